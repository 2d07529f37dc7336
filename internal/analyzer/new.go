package analyzer

import (
	"time"

	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/provider"
)

type implAnalyzer struct {
	provider     provider.Client
	logger       logger.Logger
	prompt       string
	genCfg       provider.GenerateConfig
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// New creates a segment Analyzer. All tuning comes from the config and is
// immutable afterwards.
func New(p provider.Client, cfg config.GeminiConfig, log logger.Logger) Analyzer {
	return &implAnalyzer{
		provider: p,
		logger:   log,
		prompt:   analysisPrompt,
		genCfg: provider.GenerateConfig{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		pollInterval: time.Duration(cfg.PollIntervalSeconds) * time.Second,
		pollTimeout:  time.Duration(cfg.PollTimeoutSeconds) * time.Second,
	}
}
