package subtitle

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const arrowToken = "-->"

// Parse converts raw SRT text into entries, in source block order. It never
// fails: blocks without a usable timing line are dropped, and malformed
// timestamps inside an otherwise valid block are replaced with zero. The
// returned outcomes record, per candidate block, whether it was parsed
// cleanly, skipped, or repaired.
func Parse(text string) ([]Entry, []BlockOutcome) {
	content := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	var blocks []string
	for _, b := range strings.Split(content, "\n\n") {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}

	var entries []Entry
	outcomes := make([]BlockOutcome, 0, len(blocks))

	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 || !strings.Contains(lines[1], arrowToken) {
			outcomes = append(outcomes, BlockOutcome{
				Block:  i,
				Kind:   OutcomeSkipped,
				Reason: "no timing line",
			})
			continue
		}

		parts := strings.Split(lines[1], " "+arrowToken+" ")
		if len(parts) != 2 {
			outcomes = append(outcomes, BlockOutcome{
				Block:  i,
				Kind:   OutcomeSkipped,
				Reason: "malformed timing line",
			})
			continue
		}

		var recovered []string
		start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
		if err != nil {
			recovered = append(recovered, "start")
		}
		end, err := ParseTimestamp(strings.TrimSpace(parts[1]))
		if err != nil {
			recovered = append(recovered, "end")
		}

		entries = append(entries, Entry{
			Index: strings.TrimSpace(lines[0]),
			Start: start,
			End:   end,
			Lines: textLines(lines[2:]),
		})

		outcome := BlockOutcome{Block: i, Kind: OutcomeParsed}
		if len(recovered) > 0 {
			outcome.Kind = OutcomeRecovered
			outcome.Fields = recovered
		}
		outcomes = append(outcomes, outcome)
	}

	return entries, outcomes
}

// textLines joins, trims, and resplits so that leading and trailing blank
// lines (and surrounding whitespace) are removed as a unit.
func textLines(lines []string) []string {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// ParseTimestamp parses an SRT timestamp of the form HH:MM:SS,mmm.
func ParseTimestamp(s string) (time.Duration, error) {
	hms := strings.Split(s, ":")
	if len(hms) != 3 {
		return 0, errors.New("expected HH:MM:SS,mmm")
	}
	secMillis := strings.Split(hms[2], ",")
	if len(secMillis) != 2 {
		return 0, errors.New("missing millisecond separator")
	}

	h, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.Atoi(secMillis[0])
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(secMillis[1])
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
