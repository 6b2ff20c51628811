package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shadowzevax/Extensor-SRT/internal/subtitle"
	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process [subtitle_file]",
	Short: "Close timing gaps in an SRT file",
	Long: `Process an SRT file so each caption's end time equals the next
caption's start time, then extend the last caption's display duration.

Blocks without a usable timing line are dropped; malformed timestamps are
replaced with 00:00:00,000. Both are reported, never fatal.

Examples:
  extensor process movie.srt
  extensor process movie.srt -o movie.gapless.srt --tail-seconds 3`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringP("output", "o", "", "Output file path")
	processCmd.Flags().
		Int("tail-seconds", 2, "Seconds added to the last caption's end time")
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	tailSeconds, _ := cmd.Flags().GetInt("tail-seconds")

	if tailSeconds < 0 {
		return fmt.Errorf("tail-seconds must not be negative, got %d", tailSeconds)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".srt" {
		return fmt.Errorf("unsupported subtitle format %q: use .srt", ext)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + ".processed.srt"
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	logger.Infow("Processing subtitle file",
		"input", inputPath,
		"output", outputPath,
		"tail_seconds", tailSeconds,
	)

	tail := time.Duration(tailSeconds) * time.Second
	processed, outcomes, err := subtitle.Process(string(raw), tail)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	var parsed, skipped, recovered int
	for _, o := range outcomes {
		switch o.Kind {
		case subtitle.OutcomeSkipped:
			skipped++
			logger.Warnw("Dropped subtitle block",
				"block", o.Block, "reason", o.Reason)
		case subtitle.OutcomeRecovered:
			recovered++
			logger.Warnw("Zeroed malformed timestamps",
				"block", o.Block, "fields", o.Fields)
		default:
			parsed++
		}
	}

	if err := os.WriteFile(outputPath, []byte(processed), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles processed successfully: %s\n", absOutput)
	fmt.Printf("  Captions: %d\n", parsed+recovered)
	if skipped > 0 {
		fmt.Printf("  Dropped blocks: %d\n", skipped)
	}
	if recovered > 0 {
		fmt.Printf("  Repaired timestamps: %d\n", recovered)
	}

	return nil
}
