package subtitle

import "time"

// DefaultTailExtension is how much display time the final entry gains when
// the caller does not choose otherwise.
const DefaultTailExtension = 2 * time.Second

// Normalize closes every silent gap in place: each entry's end time becomes
// the next entry's start time, unconditionally, even when source timings
// overlap or run backwards. The final entry keeps its own end time plus the
// tail extension. An empty slice is a no-op.
func Normalize(entries []Entry, tail time.Duration) {
	for i := 0; i < len(entries)-1; i++ {
		entries[i].End = entries[i+1].Start
	}
	if len(entries) > 0 {
		entries[len(entries)-1].End += tail
	}
}
