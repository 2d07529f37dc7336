package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minutesflow/minutes-flow/internal/minutes"
	"github.com/minutesflow/minutes-flow/internal/renderer"
)

// Process orchestrates the whole run for one recording: segment, analyze
// concurrently, clean, merge, render, archive.
func (p *implPipeline) Process(ctx context.Context, audioPath string) error {
	jobID := uuid.NewString()[:8]
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Processing recording: %s", jobID, audioPath)
	p.logger.Info(ctx, "========================================")

	workDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "job-"+jobID+"-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer p.cleanupWorkDir(ctx, jobID, workDir)

	segments, err := p.segmenter.Segment(ctx, audioPath, workDir)
	if err != nil {
		return fmt.Errorf("segment audio: %w", err)
	}

	partials, err := p.dispatcher.Dispatch(ctx, segments)
	if err != nil {
		return fmt.Errorf("analyze segments: %w", err)
	}

	for i := range partials {
		partials[i].Text = minutes.Clean(minutes.NormalizeEmphasis(partials[i].Text))
	}

	doc, err := p.merger.Merge(ctx, partials)
	if err != nil {
		return fmt.Errorf("merge summaries: %w", err)
	}
	doc.Text = minutes.Clean(minutes.NormalizeEmphasis(doc.Text))
	doc.Title = fmt.Sprintf("%s_%s_議事録", startTime.Format("20060102"), baseName)

	if err := p.writeOutputs(ctx, jobID, baseName, doc); err != nil {
		return err
	}

	p.archive(ctx, jobID, audioPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Completed in %s (%d segments, %d chars)",
		jobID, time.Since(startTime).Round(time.Second), len(segments), len(doc.Text))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implPipeline) writeOutputs(ctx context.Context, jobID, baseName string, doc minutes.Document) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+".docx")
	if err := renderer.WriteDocx(doc, docxPath); err != nil {
		return fmt.Errorf("render docx: %w", err)
	}
	p.logger.Info(ctx, "[%s] Wrote %s", jobID, docxPath)

	textPath := filepath.Join(p.cfg.Paths.Output, baseName+".md")
	if err := renderer.WriteText(doc, textPath); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	p.logger.Info(ctx, "[%s] Wrote %s", jobID, textPath)

	if items := minutes.ExtractConfirmations(doc.Text); len(items) > 0 {
		confirmPath := filepath.Join(p.cfg.Paths.Output, baseName+"_confirmations.txt")
		content := strings.Join(items, "\n") + "\n"
		if err := os.WriteFile(confirmPath, []byte(content), 0644); err != nil {
			p.logger.Warn(ctx, "[%s] Failed to write confirmations: %v", jobID, err)
		} else {
			p.logger.Info(ctx, "[%s] Wrote %d confirmation items", jobID, len(items))
		}
	}

	return nil
}

// archive moves the processed recording out of the input directory so it is
// not picked up again. Failure to archive is not fatal.
func (p *implPipeline) archive(ctx context.Context, jobID, audioPath string) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to create archive dir: %v", jobID, err)
		return
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))
	if err := os.Rename(audioPath, destPath); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to archive %s: %v", jobID, audioPath, err)
		return
	}
	p.logger.Debug(ctx, "[%s] Archived %s", jobID, destPath)
}

func (p *implPipeline) cleanupWorkDir(ctx context.Context, jobID, workDir string) {
	if err := os.RemoveAll(workDir); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to cleanup work dir %s: %v", jobID, workDir, err)
		return
	}
	p.logger.Debug(ctx, "[%s] Cleaned up work dir %s", jobID, workDir)
}
