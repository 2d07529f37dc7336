package segmenter

import (
	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/pkg/executor"
)

type implSegmenter struct {
	cfg      config.SegmenterConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Segmenter driving ffprobe/ffmpeg through the executor.
func New(cfg config.SegmenterConfig, exec executor.Executor, log logger.Logger) Segmenter {
	return &implSegmenter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
