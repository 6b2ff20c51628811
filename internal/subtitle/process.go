package subtitle

import (
	"fmt"
	"time"
)

// Process runs the full pipeline on raw SRT text: parse, close gaps, extend
// the final entry by tail, and render. Malformed subtitle content never
// fails the call; it is reported through the returned outcomes. The only
// error is a negative tail extension, which is the caller's contract to
// uphold.
func Process(raw string, tail time.Duration) (string, []BlockOutcome, error) {
	if tail < 0 {
		return "", nil, fmt.Errorf("tail extension must not be negative, got %s", tail)
	}

	entries, outcomes := Parse(raw)
	Normalize(entries, tail)
	return Render(entries), outcomes, nil
}
