package merger

import (
	"context"
	"fmt"
	"strings"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

// mergePrompt demands the same five-section schema the segment analysis
// produces, sized to roughly two printed pages.
const mergePrompt = `あなたは注文住宅会社の優秀な営業アシスタントです。
以下は長い打合せ音声を分割して作成した複数の部分議事録です。
これらを統合し、重複を取り除いた1つの完成した議事録を作成してください。

【出力形式】必ず以下の5セクション構成で出力してください。
箇条書きには「・」のみ使用してください。
強調したい語句は【】で囲んでください。
「*」「#」「**」などの記号は絶対に使用しないでください。

1. 打合せ概要
2. 打合せ内容
3. 決定事項
4. 次回までの確認・準備事項（【お客様】と【当社】に分けて記載）
5. 補足メモ

【分量】全体で2000〜3000文字程度にまとめてください。
同じ内容の重複は1つにまとめ、話題の流れに沿って整理してください。`

// Merge combines ordered partial summaries into one document. A single
// partial passes through unchanged. When the provider call fails the local
// fallback takes over, so Merge only errors on empty input.
func (m *implMerger) Merge(ctx context.Context, partials []minutes.PartialSummary) (minutes.Document, error) {
	if len(partials) == 0 {
		return minutes.Document{}, fmt.Errorf("no partial summaries to merge")
	}
	if len(partials) == 1 {
		m.logger.Info(ctx, "Single segment, skipping merge")
		return minutes.Document{Text: partials[0].Text}, nil
	}

	m.logger.Info(ctx, "Merging %d partial summaries", len(partials))

	result, err := m.provider.GenerateText(ctx, mergePrompt, combine(partials), m.genCfg)
	if err != nil {
		m.logger.Error(ctx, "Merge call failed, using local fallback: %v", err)
		return m.fallbackMerge(ctx, partials), nil
	}
	if result.Truncated() {
		m.logger.Warn(ctx, "Merged document hit the token ceiling and may be incomplete")
	}

	text := strings.TrimSpace(result.Text)
	m.logger.Info(ctx, "Merge complete: %d chars", len(text))
	return minutes.Document{Text: text}, nil
}

// combine labels each partial with its segment ordinal so the model can keep
// the original chronology.
func combine(partials []minutes.PartialSummary) string {
	var b strings.Builder
	for i, p := range partials {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "【セグメント%d】\n%s", p.Index+1, p.Text)
	}
	return b.String()
}
