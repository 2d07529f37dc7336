package minutes

import (
	"regexp"
	"strings"
)

// Structured-text wire contract shared with the document renderer.
// Headings are "## ..." lines or "N. ..." lines (digit, period, space).
// Bullets use one of the markers below. Emphasis spans are enclosed in 【】.

var bulletMarkers = []string{"・", "• ", "- ", "* "}

var (
	reNumberedHeading = regexp.MustCompile(`^[1-9]\. `)
	reEnumeration     = regexp.MustCompile(`^\d+\.\s*`)
	reBoldSpan        = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// HasBullet reports whether the line starts with a bullet marker.
func HasBullet(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading bullet marker and surrounding whitespace.
func StripBullet(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return strings.TrimSpace(line)
}

// IsNumberedHeading reports whether the line is a "N. ..." section heading.
func IsNumberedHeading(line string) bool {
	return reNumberedHeading.MatchString(line)
}

// IsHeading reports whether the line is any heading form of the wire contract.
func IsHeading(line string) bool {
	return strings.HasPrefix(line, "##") || IsNumberedHeading(line)
}

// IsHorizontalRule reports whether the line is a section-separator rule.
func IsHorizontalRule(line string) bool {
	return strings.HasPrefix(line, "---")
}

// IsEmphasisOnly reports whether the whole line is a single 【】 span,
// e.g. the 【お客様】 / 【当社】 sub-headings of section 4.
func IsEmphasisOnly(line string) bool {
	return strings.HasPrefix(line, "【") && strings.HasSuffix(line, "】") &&
		strings.Count(line, "【") == 1 && strings.Count(line, "】") == 1
}

// StripEnumeration removes a leading "N. " item number.
func StripEnumeration(line string) string {
	return reEnumeration.ReplaceAllString(line, "")
}

// NormalizeEmphasis rewrites markdown bold spans into the 【】 emphasis the
// renderer understands. Models occasionally emit **...** despite the prompt.
func NormalizeEmphasis(text string) string {
	return reBoldSpan.ReplaceAllString(text, "【$1】")
}
