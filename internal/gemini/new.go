package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/minutesflow/minutes-flow/internal/config"
	"github.com/minutesflow/minutes-flow/internal/logger"
	"github.com/minutesflow/minutes-flow/internal/provider"
)

var (
	// ErrMissingAPIKey means neither the config nor the environment carries
	// a Gemini API key. Fatal at startup.
	ErrMissingAPIKey = errors.New("gemini API key not configured (set GEMINI_API_KEY or gemini.api_key)")
	// ErrModelUnavailable means every candidate model failed to initialize.
	ErrModelUnavailable = errors.New("no usable gemini model")
)

type implClient struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Gemini-backed provider client. The model is chosen once here
// by probing the configured candidates in priority order; the first that
// resolves becomes the fixed model for every subsequent call.
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (provider.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model, err := selectModel(ctx, client, cfg.Models, log)
	if err != nil {
		return nil, err
	}

	return &implClient{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

// selectModel probes candidates in order and returns the first that resolves.
func selectModel(ctx context.Context, client *genai.Client, candidates []string, log logger.Logger) (string, error) {
	var lastErr error
	for _, name := range candidates {
		if _, err := client.Models.Get(ctx, name, nil); err != nil {
			log.Warn(ctx, "Model %s unavailable: %v", name, err)
			lastErr = err
			continue
		}
		log.Info(ctx, "Using model: %s", name)
		return name, nil
	}
	return "", fmt.Errorf("%w: last error: %v", ErrModelUnavailable, lastErr)
}
