package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

func sampleDocument() minutes.Document {
	return minutes.Document{
		Title: "20260823_山田様_議事録",
		Text: strings.Join([]string{
			"1. 打合せ概要",
			"間取り変更の打合せ。",
			"",
			"2. 打合せ内容",
			"・【キッチン】対面式に変更",
			"・予算は**500万円**以内",
			"",
			"4. 次回までの確認・準備事項",
			"【お客様】",
			"・見積書確認",
			"---",
			"5. 補足メモ",
			"特になし",
		}, "\n"),
	}
}

func TestWriteDocx(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "minutes.docx")

	if err := WriteDocx(sampleDocument(), outPath); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWriteText(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "minutes.md")

	if err := WriteText(sampleDocument(), outPath); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "20260823_山田様_議事録\n") {
		t.Errorf("output should start with the title, got %q", content[:40])
	}
	if !strings.Contains(content, "1. 打合せ概要") {
		t.Error("output should contain the structured text")
	}
}
