package segmenter

import "time"

// span is one planned chunk of the recording.
type span struct {
	start  time.Duration
	length time.Duration
}

// splitPlan divides the total duration into the fewest equal chunks that all
// fit under max. A recording at or under max stays whole.
func splitPlan(total, max time.Duration) []span {
	if max <= 0 || total <= max {
		return []span{{start: 0, length: total}}
	}

	n := int(total / max)
	if total%max != 0 {
		n++
	}

	chunk := total / time.Duration(n)
	spans := make([]span, n)
	for i := range spans {
		start := time.Duration(i) * chunk
		length := chunk
		if i == n-1 {
			// Last chunk absorbs the integer-division remainder.
			length = total - start
		}
		spans[i] = span{start: start, length: length}
	}
	return spans
}
