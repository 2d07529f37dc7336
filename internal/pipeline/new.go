package pipeline

import (
	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/dispatch"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/merger"
	"github.com/minutesflow/minutes-flow/internal/segmenter"
)

type implPipeline struct {
	cfg        *config.Config
	segmenter  segmenter.Segmenter
	dispatcher dispatch.Coordinator
	merger     merger.Merger
	logger     logger.Logger
}

// New wires the processing stages into a Pipeline.
func New(cfg *config.Config, seg segmenter.Segmenter, disp dispatch.Coordinator, m merger.Merger, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		segmenter:  seg,
		dispatcher: disp,
		merger:     m,
		logger:     log,
	}
}
