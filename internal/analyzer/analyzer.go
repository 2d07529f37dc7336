package analyzer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/minutesflow/minutes-flow/internal/minutes"
	"github.com/minutesflow/minutes-flow/internal/provider"
)

var errStillProcessing = errors.New("upload still processing")

// Analyze submits one segment, waits for the upload to become usable, runs
// the generation call and returns the partial summary. The remote upload is
// deleted afterwards regardless of outcome.
func (a *implAnalyzer) Analyze(ctx context.Context, seg minutes.AudioSegment) (minutes.PartialSummary, error) {
	a.logger.Info(ctx, "Analyzing segment %d: %s (%.2f MB)",
		seg.Index, filepath.Base(seg.Path), float64(seg.SizeBytes)/(1024*1024))

	handle, err := a.provider.Upload(ctx, seg.Path)
	if err != nil {
		return minutes.PartialSummary{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer a.deleteUpload(ctx, handle.ID)

	handle, err = a.waitForActive(ctx, handle)
	if err != nil {
		return minutes.PartialSummary{}, err
	}

	start := time.Now()
	result, err := a.provider.GenerateFromFile(ctx, a.prompt, handle, a.genCfg)
	if err != nil {
		return minutes.PartialSummary{}, classifyProviderError(a.provider.Model(), err)
	}
	a.logger.Info(ctx, "Segment %d analyzed in %s (%d chars)",
		seg.Index, time.Since(start).Round(time.Millisecond), len(result.Text))

	if result.Truncated() {
		a.logger.Warn(ctx, "Segment %d output hit the token ceiling and may be incomplete", seg.Index)
	}

	text := strings.TrimSpace(result.Text)
	if !strings.Contains(text, "5. 補足メモ") && !strings.Contains(text, "## 5") {
		a.logger.Warn(ctx, "Segment %d summary looks incomplete (section 5 missing)", seg.Index)
	}

	return minutes.PartialSummary{Index: seg.Index, Text: text}, nil
}

// waitForActive polls the upload on a fixed interval until it leaves
// PROCESSING, bounded by the configured ceiling.
func (a *implAnalyzer) waitForActive(ctx context.Context, h provider.Handle) (provider.Handle, error) {
	switch h.State {
	case provider.StateActive:
		return h, nil
	case provider.StateFailed:
		return h, fmt.Errorf("%w: upload %s", ErrProcessingFailed, h.ID)
	}

	current := h
	started := time.Now()

	operation := func() error {
		refreshed, err := a.provider.Poll(ctx, h.ID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("poll upload %s: %w", h.ID, err))
		}
		current = refreshed

		switch refreshed.State {
		case provider.StateActive:
			return nil
		case provider.StateFailed:
			return backoff.Permanent(fmt.Errorf("%w: upload %s", ErrProcessingFailed, h.ID))
		default:
			a.logger.Debug(ctx, "Upload %s still processing (%s elapsed)",
				h.ID, time.Since(started).Round(time.Second))
			return errStillProcessing
		}
	}

	maxPolls := uint64(a.pollTimeout / a.pollInterval)
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(a.pollInterval), maxPolls), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errStillProcessing) {
			return current, fmt.Errorf("%w: upload %s after %s", ErrProcessingTimeout, h.ID, a.pollTimeout)
		}
		return current, err
	}

	return current, nil
}

// deleteUpload is best-effort cleanup: failures are logged, never propagated.
// It runs on a detached context so a cancelled batch still cleans up.
func (a *implAnalyzer) deleteUpload(ctx context.Context, id string) {
	cleanupCtx := context.WithoutCancel(ctx)
	if err := a.provider.Delete(cleanupCtx, id); err != nil {
		a.logger.Warn(ctx, "Failed to delete upload %s: %v", id, err)
		return
	}
	a.logger.Debug(ctx, "Deleted upload %s", id)
}
