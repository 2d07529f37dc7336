package minutes

import "strings"

// bulletSimilarityThreshold is the character-overlap ratio above which two
// consecutive bullets are considered the same item.
const bulletSimilarityThreshold = 0.8

// Clean removes the repetition noise generative models produce: runs of an
// identical line, consecutive bullets that restate each other, and repeated
// section headings. Line order is preserved; blank lines pass through and
// reset the consecutive-repeat tracking. Clean is idempotent.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	seenHeadings := make(map[string]bool)
	prev := ""   // last kept non-blank line, normalized
	repeats := 0 // consecutive kept occurrences of prev beyond the first

	for _, line := range lines {
		norm := strings.TrimSpace(line)

		if norm == "" {
			out = append(out, line)
			prev = ""
			repeats = 0
			continue
		}

		if IsNumberedHeading(norm) {
			key := headingKey(norm)
			if seenHeadings[key] {
				continue
			}
			seenHeadings[key] = true
		}

		if norm == prev {
			repeats++
			// One repeat is tolerated; the third occurrence onward is dropped.
			if repeats >= 2 {
				continue
			}
		} else {
			if prev != "" && HasBullet(norm) && HasBullet(prev) {
				if overlapRatio(StripBullet(norm), StripBullet(prev)) > bulletSimilarityThreshold {
					continue
				}
			}
			repeats = 0
		}

		out = append(out, line)
		prev = norm
	}

	return strings.Join(out, "\n")
}

// headingKey identifies a numbered heading by its first five characters,
// so "4. 次回までの確認・準備事項" and a reworded repeat collapse together.
func headingKey(line string) string {
	runes := []rune(line)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return string(runes)
}

// overlapRatio is the share of the shorter string's characters that appear
// anywhere in the longer one, over the longer string's length. Deliberately
// crude and asymmetric; cheap enough to run on every bullet pair.
func overlapRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	shorter, longer := ra, rb
	if len(rb) < len(ra) {
		shorter, longer = rb, ra
	}
	if len(longer) == 0 {
		return 0
	}

	present := make(map[rune]bool, len(longer))
	for _, r := range longer {
		present[r] = true
	}

	matched := 0
	for _, r := range shorter {
		if present[r] {
			matched++
		}
	}

	return float64(matched) / float64(len(longer))
}
