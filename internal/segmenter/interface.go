package segmenter

import (
	"context"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Segmenter splits a recording into ordered segments sized to fit provider
// limits, compressing each to mono audio along the way.
type Segmenter interface {
	Segment(ctx context.Context, audioPath, workDir string) ([]minutes.AudioSegment, error)
}
