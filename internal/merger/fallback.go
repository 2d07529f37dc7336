package merger

import (
	"context"
	"strings"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

const (
	fallbackHeading    = "## 打合せ内容（統合）"
	maxFallbackBullets = 20
)

// fallbackMerge is the deterministic recovery path: every bullet line across
// the partials in original order, exact duplicates dropped on first-seen
// basis, capped and wrapped under one heading. It never fails.
func (m *implMerger) fallbackMerge(ctx context.Context, partials []minutes.PartialSummary) minutes.Document {
	seen := make(map[string]bool)
	bullets := make([]string, 0, maxFallbackBullets)

	for _, p := range partials {
		for _, line := range strings.Split(p.Text, "\n") {
			norm := strings.TrimSpace(line)
			if !minutes.HasBullet(norm) || seen[norm] {
				continue
			}
			seen[norm] = true
			bullets = append(bullets, norm)
			if len(bullets) == maxFallbackBullets {
				break
			}
		}
		if len(bullets) == maxFallbackBullets {
			break
		}
	}

	m.logger.Warn(ctx, "Fallback merge produced %d bullets from %d partials", len(bullets), len(partials))

	var b strings.Builder
	b.WriteString(fallbackHeading)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(bullets, "\n"))
	return minutes.Document{Text: strings.TrimSpace(b.String())}
}
