package segmenter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// Segment probes the recording, plans equal-duration chunks under the
// configured ceiling, and encodes each chunk as mono audio into workDir.
// The returned segments are ordered by their chunk position.
func (s *implSegmenter) Segment(ctx context.Context, audioPath, workDir string) ([]minutes.AudioSegment, error) {
	total, err := s.probeDuration(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("probe duration: %w", err)
	}

	maxSegment := time.Duration(s.cfg.MaxSegmentMinutes) * time.Minute
	plan := splitPlan(total, maxSegment)

	s.logger.Info(ctx, "Splitting %s (%s) into %d segment(s)",
		filepath.Base(audioPath), total.Round(time.Second), len(plan))

	segments := make([]minutes.AudioSegment, 0, len(plan))
	for i, span := range plan {
		outPath := filepath.Join(workDir, fmt.Sprintf("segment_%03d.mp3", i))
		if err := s.encodeChunk(ctx, audioPath, outPath, span, len(plan) == 1); err != nil {
			return nil, fmt.Errorf("encode segment %d: %w", i, err)
		}

		info, err := os.Stat(outPath)
		if err != nil {
			return nil, fmt.Errorf("stat segment %d: %w", i, err)
		}

		segments = append(segments, minutes.AudioSegment{
			Index:     i,
			Path:      outPath,
			SizeBytes: info.Size(),
			Duration:  span.length,
		})
	}

	return segments, nil
}

// probeDuration asks ffprobe for the container duration in seconds.
func (s *implSegmenter) probeDuration(ctx context.Context, audioPath string) (time.Duration, error) {
	out, err := s.executor.Execute(ctx, s.cfg.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// encodeChunk transcodes one chunk to mono MP3 at the configured bitrate.
// A whole-file chunk skips the seek/limit flags.
func (s *implSegmenter) encodeChunk(ctx context.Context, inPath, outPath string, sp span, whole bool) error {
	args := []string{"-i", inPath}
	if !whole {
		args = append(args,
			"-ss", formatSeconds(sp.start),
			"-t", formatSeconds(sp.length),
		)
	}
	args = append(args,
		"-vn",
		"-ac", "1",
		"-b:a", s.cfg.AudioBitrate,
		"-y",
		outPath,
	)

	if _, err := s.executor.Execute(ctx, s.cfg.FFmpegPath, args...); err != nil {
		return err
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
