package subtitle

import (
	"strings"
	"time"
)

// Entry represents a single subtitle entry.
//
// Index is the display label from the source file, kept verbatim: it is
// usually a sequence number but is never reparsed or renumbered.
type Entry struct {
	Index string
	Start time.Duration
	End   time.Duration
	Lines []string
}

// Text returns the entry's text lines joined with newlines.
func (e Entry) Text() string {
	return strings.Join(e.Lines, "\n")
}

// OutcomeKind classifies how a source block was handled by the parser.
type OutcomeKind int

const (
	// OutcomeParsed means the block produced an entry with no repairs.
	OutcomeParsed OutcomeKind = iota
	// OutcomeSkipped means the block was structurally unusable and dropped.
	OutcomeSkipped
	// OutcomeRecovered means the block was kept but one or both timestamps
	// were malformed and replaced with zero.
	OutcomeRecovered
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeParsed:
		return "parsed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// BlockOutcome reports the parse result for one candidate block, in source
// order. Skipped blocks carry a Reason; recovered blocks list the timestamp
// fields that were zeroed.
type BlockOutcome struct {
	Block  int
	Kind   OutcomeKind
	Reason string
	Fields []string
}
