package dispatch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Dispatch launches one analysis call per segment and returns the partial
// summaries positionally, so output order always equals input ordinal order
// no matter which call finishes first. Any failing segment fails the whole
// batch; the group context stops the surviving calls early.
func (c *implCoordinator) Dispatch(ctx context.Context, segments []minutes.AudioSegment) ([]minutes.PartialSummary, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	c.logger.Info(ctx, "Dispatching %d segments for concurrent analysis", len(segments))

	results := make([]minutes.PartialSummary, len(segments))
	g, gctx := errgroup.WithContext(ctx)

	for i, seg := range segments {
		g.Go(func() error {
			partial, err := c.analyzer.Analyze(gctx, seg)
			if err != nil {
				return fmt.Errorf("segment %d: %w", seg.Index, err)
			}
			results[i] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, p := range results {
		c.logger.Info(ctx, "Segment %d summary: %d chars", i+1, len(p.Text))
	}

	return results, nil
}
