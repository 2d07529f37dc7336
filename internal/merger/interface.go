package merger

import (
	"context"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Merger combines ordered partial summaries into one final document.
type Merger interface {
	Merge(ctx context.Context, partials []minutes.PartialSummary) (minutes.Document, error)
}
