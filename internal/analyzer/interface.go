package analyzer

import (
	"context"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Analyzer turns one audio segment into a partial structured summary.
type Analyzer interface {
	Analyze(ctx context.Context, seg minutes.AudioSegment) (minutes.PartialSummary, error)
}
