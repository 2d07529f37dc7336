package minutes

import "strings"

// maxConfirmations bounds the extracted action-item list.
const maxConfirmations = 10

// sectionMarkers locate the 確認・準備事項 section, most specific first.
var sectionMarkers = []string{
	"4. 次回までの確認・準備事項",
	"4.次回までの確認・準備事項",
	"【次回までの確認・準備事項】",
	"次回までの確認・準備事項",
	"確認・準備事項",
}

// actionKeywords drive the whole-text fallback when no section marker exists.
var actionKeywords = []string{"確認", "検討", "調査", "準備", "用意"}

// sectionTitles are the five fixed section names; a heading carrying one of
// them ends the sliced section. Enumerated items ("1. 見積書確認") are not
// boundaries even though they look like numbered headings.
var sectionTitles = []string{"打合せ概要", "打合せ内容", "決定事項", "次回までの確認・準備事項", "補足メモ"}

// ExtractConfirmations pulls up to 10 action items out of a structured
// minutes text. It slices the 確認・準備事項 section when a marker is found,
// otherwise falls back to scanning the whole text for action keywords.
func ExtractConfirmations(text string) []string {
	lines := strings.Split(text, "\n")

	start := sectionStart(lines)
	if start < 0 {
		return keywordFallback(lines)
	}

	items := make([]string, 0, maxConfirmations)
	for _, line := range lines[start:] {
		norm := strings.TrimSpace(line)
		if isSectionBoundary(norm) {
			break
		}
		item := StripEnumeration(StripBullet(norm))
		if !keepItem(item) {
			continue
		}
		items = append(items, item)
		if len(items) == maxConfirmations {
			break
		}
	}

	return items
}

// sectionStart returns the index of the line after the first section marker
// found, trying markers in priority order. -1 when no marker matches.
func sectionStart(lines []string) int {
	for _, marker := range sectionMarkers {
		for i, line := range lines {
			if strings.Contains(line, marker) {
				return i + 1
			}
		}
	}
	return -1
}

func isSectionBoundary(line string) bool {
	if IsHorizontalRule(line) {
		return true
	}
	if !IsHeading(line) {
		return false
	}
	for _, title := range sectionTitles {
		if strings.Contains(line, title) {
			return true
		}
	}
	return false
}

func keepItem(item string) bool {
	if item == "" || item == "特になし" {
		return false
	}
	if IsEmphasisOnly(item) {
		return false
	}
	return len([]rune(item)) > 3
}

func keywordFallback(lines []string) []string {
	seen := make(map[string]bool)
	items := make([]string, 0, maxConfirmations)

	for _, line := range lines {
		norm := strings.TrimSpace(line)
		if norm == "" || IsHeading(norm) {
			continue
		}
		if !containsActionKeyword(norm) {
			continue
		}
		item := StripEnumeration(StripBullet(norm))
		if !keepItem(item) || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
		if len(items) == maxConfirmations {
			break
		}
	}

	return items
}

func containsActionKeyword(line string) bool {
	for _, kw := range actionKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
