package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessCommand(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "movie.srt")
	outputPath := filepath.Join(tmpDir, "out.srt")

	content := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:06,000\nWorld\n\n"
	if err := os.WriteFile(inputPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	rootCmd.SetArgs([]string{"process", inputPath, "-o", outputPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("process command failed: %v", err)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "1\n00:00:01,000 --> 00:00:05,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:08,000\nWorld\n\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", string(out), want)
	}
}

func TestProcessCommandRejectsNegativeTail(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "movie.srt")
	if err := os.WriteFile(inputPath, []byte("1\n00:00:01,000 --> 00:00:02,000\nHi\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	rootCmd.SetArgs([]string{"process", inputPath, "--tail-seconds", "-1"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for negative tail-seconds")
	}
	if !strings.Contains(err.Error(), "negative") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProcessCommandRejectsWrongExtension(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "movie.txt")
	if err := os.WriteFile(inputPath, []byte("whatever"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// Reset tail-seconds explicitly; flag values persist across Execute calls.
	rootCmd.SetArgs([]string{"process", inputPath, "--tail-seconds", "2"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for non-srt input")
	}
	if !strings.Contains(err.Error(), "unsupported subtitle format") {
		t.Errorf("unexpected error: %v", err)
	}
}
