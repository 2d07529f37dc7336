package dispatch

import (
	"context"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Coordinator fans an ordered segment list out to concurrent analysis calls
// and gathers the partial summaries back in input order.
type Coordinator interface {
	Dispatch(ctx context.Context, segments []minutes.AudioSegment) ([]minutes.PartialSummary, error)
}
