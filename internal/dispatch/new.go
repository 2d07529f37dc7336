package dispatch

import (
	"github.com/minutesflow/minutes-flow/internal/analyzer"
	"github.com/minutesflow/minutes-flow/internal/logger"
)

type implCoordinator struct {
	analyzer analyzer.Analyzer
	logger   logger.Logger
}

// New creates a Coordinator backed by the given analyzer.
func New(a analyzer.Analyzer, log logger.Logger) Coordinator {
	return &implCoordinator{
		analyzer: a,
		logger:   log,
	}
}
