package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/minutes"
)

type fakeSegmenter struct {
	segments []minutes.AudioSegment
}

func (f *fakeSegmenter) Segment(ctx context.Context, audioPath, workDir string) ([]minutes.AudioSegment, error) {
	return f.segments, nil
}

type fakeDispatcher struct {
	partials []minutes.PartialSummary
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, segments []minutes.AudioSegment) ([]minutes.PartialSummary, error) {
	return f.partials, nil
}

type fakeMerger struct {
	received []minutes.PartialSummary
	doc      minutes.Document
}

func (f *fakeMerger) Merge(ctx context.Context, partials []minutes.PartialSummary) (minutes.Document, error) {
	f.received = partials
	return f.doc, nil
}

func TestProcessEndToEnd(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
			Temp:     root,
		},
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	audioPath := filepath.Join(cfg.Paths.Input, "meeting.mp3")
	if err := os.WriteFile(audioPath, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	// Partial with noise the pipeline should clean before merging.
	noisy := "2. 打合せ内容\n・同じ項目\n・同じ項目\n・同じ項目"
	fm := &fakeMerger{doc: minutes.Document{
		Text: "4. 次回までの確認・準備事項\n・見積書を確認する\n5. 補足メモ\n特になし",
	}}

	p := New(cfg,
		&fakeSegmenter{segments: []minutes.AudioSegment{{Index: 0, Path: "seg.mp3"}}},
		&fakeDispatcher{partials: []minutes.PartialSummary{{Index: 0, Text: noisy}}},
		fm,
		logger.New("error"),
	)

	if err := p.Process(context.Background(), audioPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Partials were cleaned before reaching the merger.
	if len(fm.received) != 1 {
		t.Fatalf("merger received %d partials, want 1", len(fm.received))
	}
	if got := strings.Count(fm.received[0].Text, "・同じ項目"); got != 2 {
		t.Errorf("cleaned partial has %d repeats, want 2", got)
	}

	// Outputs rendered.
	for _, name := range []string{"meeting.docx", "meeting.md", "meeting_confirmations.txt"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.Output, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "meeting_confirmations.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "見積書を確認する" {
		t.Errorf("confirmations = %q, want 見積書を確認する", string(data))
	}

	// Input archived.
	if _, err := os.Stat(audioPath); !os.IsNotExist(err) {
		t.Error("input file should have been moved out of the input dir")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "meeting.mp3")); err != nil {
		t.Errorf("archived copy missing: %v", err)
	}
}
