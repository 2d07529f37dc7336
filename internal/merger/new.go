package merger

import (
	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/provider"
)

type implMerger struct {
	provider provider.Client
	logger   logger.Logger
	genCfg   provider.GenerateConfig
}

// New creates a Merger. The merge call runs at a lower temperature than
// segment analysis so the combined document stays deterministic.
func New(p provider.Client, cfg config.GeminiConfig, log logger.Logger) Merger {
	return &implMerger{
		provider: p,
		logger:   log,
		genCfg: provider.GenerateConfig{
			Temperature:     cfg.MergeTemperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}
}
