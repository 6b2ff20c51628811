package subtitle

import (
	"strings"
	"testing"
	"time"
)

func TestProcess(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:06,000\nWorld\n\n"

	got, outcomes, err := Process(input, DefaultTailExtension)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	want := "1\n00:00:01,000 --> 00:00:05,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:08,000\nWorld\n\n"
	if got != want {
		t.Errorf("Process produced %q, want %q", got, want)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	got, outcomes, err := Process("  \n\n ", DefaultTailExtension)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(outcomes))
	}
}

func TestProcessNegativeTail(t *testing.T) {
	_, _, err := Process("1\n00:00:01,000 --> 00:00:02,000\nHi\n", -time.Second)
	if err == nil {
		t.Fatal("expected error for negative tail extension")
	}
	if !strings.Contains(err.Error(), "negative") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProcessMixedMalformedBlocks(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nFirst\n\n" +
		"3\nnot-a-timing-line\nOrphan text\n\n" +
		"4\n00:0x:01,000 --> 00:00:02,000\nBad\n"

	got, outcomes, err := Process(input, 0)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[1].Kind != OutcomeSkipped {
		t.Errorf("block 1: expected skipped, got %s", outcomes[1].Kind)
	}
	if outcomes[2].Kind != OutcomeRecovered {
		t.Errorf("block 2: expected recovered, got %s", outcomes[2].Kind)
	}

	if strings.Contains(got, "Orphan") {
		t.Error("skipped block leaked into output")
	}
	// The recovered block keeps its text; the zeroed start renders as zero.
	if !strings.Contains(got, "4\n00:00:00,000 --> ") {
		t.Errorf("expected zeroed start for recovered block, got %q", got)
	}
	// The first block is unaffected by its malformed neighbors.
	if !strings.HasPrefix(got, "1\n00:00:01,000 --> 00:00:00,000\nFirst\n\n") {
		t.Errorf("unexpected first block in %q", got)
	}
}

func TestProcessNotIdempotent(t *testing.T) {
	// Reprocessing extends the final entry again; that is the contract,
	// not a defect.
	input := "1\n00:00:01,000 --> 00:00:02,000\nOnly\n\n"

	once, _, err := Process(input, DefaultTailExtension)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	twice, _, err := Process(once, DefaultTailExtension)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	if !strings.Contains(once, "00:00:04,000") {
		t.Errorf("first pass: expected end 4s, got %q", once)
	}
	if !strings.Contains(twice, "00:00:06,000") {
		t.Errorf("second pass: expected end 6s, got %q", twice)
	}
}

func TestProcessAllBlocksUnparseable(t *testing.T) {
	input := "garbage\n\nmore garbage\n"

	got, outcomes, err := Process(input, DefaultTailExtension)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	for _, o := range outcomes {
		if o.Kind != OutcomeSkipped {
			t.Errorf("block %d: expected skipped, got %s", o.Block, o.Kind)
		}
	}
}
