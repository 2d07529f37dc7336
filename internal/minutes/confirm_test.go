package minutes

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractConfirmationsSection(t *testing.T) {
	in := "4. 次回までの確認・準備事項\n【お客様】\n・見積書確認\n5. 補足メモ\n特になし"

	got := ExtractConfirmations(in)
	want := []string{"見積書確認"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractConfirmations() = %v, want %v", got, want)
	}
}

func TestExtractConfirmationsBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stops at horizontal rule",
			text: "4. 次回までの確認・準備事項\n・土地の登記簿を準備\n---\n・これは含まれない確認事項",
			want: []string{"土地の登記簿を準備"},
		},
		{
			name: "emphasized marker variant",
			text: "【次回までの確認・準備事項】\n・住宅ローンの事前審査を準備\n5. 補足メモ",
			want: []string{"住宅ローンの事前審査を準備"},
		},
		{
			name: "strips item enumeration",
			text: "4. 次回までの確認・準備事項\n1. 見積書の内容を確認\n2. 図面の修正を確認\n5. 補足メモ",
			want: []string{"見積書の内容を確認", "図面の修正を確認"},
		},
		{
			name: "placeholder and sub-headings skipped",
			text: "4. 次回までの確認・準備事項\n【お客様】\n特になし\n【当社】\n・仕様書の更新を準備\n5. 補足メモ",
			want: []string{"仕様書の更新を準備"},
		},
		{
			name: "short lines dropped",
			text: "4. 次回までの確認・準備事項\n・確認\n・見積書の再確認\n5. 補足メモ",
			want: []string{"見積書の再確認"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractConfirmations(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractConfirmations() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractConfirmationsKeywordFallback(t *testing.T) {
	in := strings.Join([]string{
		"今日の打合せのまとめです。",
		"・キッチンの色を検討する",
		"・キッチンの色を検討する",
		"・天気の話をした",
		"・登記簿謄本を準備する",
	}, "\n")

	got := ExtractConfirmations(in)
	want := []string{"キッチンの色を検討する", "登記簿謄本を準備する"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractConfirmations() = %v, want %v", got, want)
	}
}

func TestExtractConfirmationsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("4. 次回までの確認・準備事項\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "・項目%02dの内容を確認\n", i)
	}
	b.WriteString("5. 補足メモ\n")

	got := ExtractConfirmations(b.String())
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
	if got[0] != "項目00の内容を確認" {
		t.Errorf("first item = %q, want 項目00の内容を確認", got[0])
	}
}

func TestExtractConfirmationsNoMatches(t *testing.T) {
	got := ExtractConfirmations("1. 打合せ概要\n雑談のみ。")
	if len(got) != 0 {
		t.Errorf("ExtractConfirmations() = %v, want empty", got)
	}
}
