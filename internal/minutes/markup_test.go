package minutes

import "testing"

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"・見積書確認", "見積書確認"},
		{"• 見積書確認", "見積書確認"},
		{"- 見積書確認", "見積書確認"},
		{"* 見積書確認", "見積書確認"},
		{"見積書確認", "見積書確認"},
	}

	for _, tt := range tests {
		if got := StripBullet(tt.in); got != tt.want {
			t.Errorf("StripBullet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadingDetection(t *testing.T) {
	tests := []struct {
		in       string
		numbered bool
		heading  bool
	}{
		{"1. 打合せ概要", true, true},
		{"5. 補足メモ", true, true},
		{"## 決定事項", false, true},
		{"10. 番外", false, false},
		{"・箇条書き", false, false},
		{"普通の文", false, false},
	}

	for _, tt := range tests {
		if got := IsNumberedHeading(tt.in); got != tt.numbered {
			t.Errorf("IsNumberedHeading(%q) = %v, want %v", tt.in, got, tt.numbered)
		}
		if got := IsHeading(tt.in); got != tt.heading {
			t.Errorf("IsHeading(%q) = %v, want %v", tt.in, got, tt.heading)
		}
	}
}

func TestIsEmphasisOnly(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"【お客様】", true},
		{"【当社】", true},
		{"【予算】は未確定", false},
		{"お客様", false},
	}

	for _, tt := range tests {
		if got := IsEmphasisOnly(tt.in); got != tt.want {
			t.Errorf("IsEmphasisOnly(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEmphasis(t *testing.T) {
	in := "**ロッカーについて**の要点と**予算**の話"
	want := "【ロッカーについて】の要点と【予算】の話"

	if got := NormalizeEmphasis(in); got != want {
		t.Errorf("NormalizeEmphasis() = %q, want %q", got, want)
	}
}
