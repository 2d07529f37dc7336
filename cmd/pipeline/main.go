package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/minutesflow/minutes-flow/internal/analyzer"
	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/dispatch"
	"github.com/minutesflow/minutes-flow/internal/gemini"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/merger"
	"github.com/minutesflow/minutes-flow/internal/pipeline"
	"github.com/minutesflow/minutes-flow/internal/segmenter"
	"github.com/minutesflow/minutes-flow/internal/watcher"
	"github.com/minutesflow/minutes-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max concurrent recordings: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	provider, err := gemini.New(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize gemini client: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	seg := segmenter.New(cfg.Segmenter, exec, log)
	disp := dispatch.New(analyzer.New(provider, cfg.Gemini, log), log)
	merge := merger.New(provider, cfg.Gemini, log)
	pipe := pipeline.New(cfg, seg, disp, merge, log)

	w, err := watcher.New(cfg.Paths.Input, pipe.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Model: %s", provider.Model())
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
