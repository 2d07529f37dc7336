package minutes

import (
	"strings"
	"testing"
)

func TestCleanConsecutiveRepeats(t *testing.T) {
	in := strings.Join([]string{
		"・次回は模型を確認する",
		"・次回は模型を確認する",
		"・次回は模型を確認する",
		"・次回は模型を確認する",
	}, "\n")

	got := Clean(in)
	want := strings.Join([]string{
		"・次回は模型を確認する",
		"・次回は模型を確認する",
	}, "\n")

	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanBlankLineResetsRepeatTracking(t *testing.T) {
	in := "同じ行\n同じ行\n\n同じ行\n同じ行"

	if got := Clean(in); got != in {
		t.Errorf("Clean() = %q, want input unchanged %q", got, in)
	}
}

func TestCleanBulletNearDuplicate(t *testing.T) {
	in := "・予算は500万円です\n・予算は500万円程度です"

	got := Clean(in)
	want := "・予算は500万円です"

	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanKeepsDissimilarBullets(t *testing.T) {
	in := "・キッチンは対面式に変更\n・外壁はグレー系で検討"

	if got := Clean(in); got != in {
		t.Errorf("Clean() = %q, want both bullets kept", got)
	}
}

func TestCleanRepeatedSectionHeading(t *testing.T) {
	in := strings.Join([]string{
		"3. 決定事項",
		"・間取りを確定",
		"3. 決定事項",
		"・色を確定",
	}, "\n")

	got := Clean(in)
	want := strings.Join([]string{
		"3. 決定事項",
		"・間取りを確定",
		"・色を確定",
	}, "\n")

	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"1. 打合せ概要\n概要です\n\n2. 打合せ内容\n・予算は500万円です\n・予算は500万円程度です\n・予算は500万円です",
		"同じ\n同じ\n同じ\n同じ",
		"3. 決定事項\n3. 決定事項\n・なし",
		"・あ\n・い\n・う",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "あいう", "あいう", 1.0},
		{"disjoint", "あいう", "かきく", 0.0},
		{"budget bullets", "予算は500万円です", "予算は500万円程度です", 10.0 / 12.0},
		{"empty longer", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlapRatio(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("overlapRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOverlapRatioAsymmetry(t *testing.T) {
	// The ratio depends on which string is shorter, not on argument order.
	a, b := "予算は500万円です", "予算は500万円程度です"
	if overlapRatio(a, b) != overlapRatio(b, a) {
		t.Error("overlapRatio should be independent of argument order")
	}
}
