package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// Render serializes entries back to SRT text, one block per entry in
// sequence order. Index labels and text pass through untouched: no
// renumbering, escaping, or rewrapping.
func Render(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Index)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			FormatTimestamp(e.Start),
			arrowToken,
			FormatTimestamp(e.End)))
		sb.WriteString(e.Text())
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// FormatTimestamp formats a duration as an SRT timestamp, HH:MM:SS,mmm.
// Negative durations clamp to zero. Hours are zero-padded to two digits but
// not truncated above 99.
func FormatTimestamp(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	m := (ms % 3600000) / 60000
	s := (ms % 60000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}
