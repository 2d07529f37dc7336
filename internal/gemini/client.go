package gemini

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/minutesflow/minutes-flow/internal/provider"
)

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".mp4":  "audio/mp4",
}

func (c *implClient) Model() string {
	return c.model
}

func (c *implClient) Upload(ctx context.Context, path string) (provider.Handle, error) {
	file, err := c.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeForPath(path),
	})
	if err != nil {
		return provider.Handle{}, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	return toHandle(file), nil
}

func (c *implClient) Poll(ctx context.Context, id string) (provider.Handle, error) {
	file, err := c.client.Files.Get(ctx, id, nil)
	if err != nil {
		return provider.Handle{}, fmt.Errorf("get file %s: %w", id, err)
	}
	return toHandle(file), nil
}

func (c *implClient) Delete(ctx context.Context, id string) error {
	if _, err := c.client.Files.Delete(ctx, id, nil); err != nil {
		return fmt.Errorf("delete file %s: %w", id, err)
	}
	return nil
}

func (c *implClient) GenerateFromFile(ctx context.Context, prompt string, h provider.Handle, cfg provider.GenerateConfig) (provider.Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(h.URI, h.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.generate(ctx, contents, cfg)
}

func (c *implClient) GenerateText(ctx context.Context, prompt, content string, cfg provider.GenerateConfig) (provider.Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText(content),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.generate(ctx, contents, cfg)
}

func (c *implClient) generate(ctx context.Context, contents []*genai.Content, cfg provider.GenerateConfig) (provider.Result, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	if err != nil {
		return provider.Result{}, fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return provider.Result{}, fmt.Errorf("empty response from gemini")
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return provider.Result{
		Text:         text.String(),
		FinishReason: finishReason(candidate.FinishReason),
	}, nil
}

func toHandle(file *genai.File) provider.Handle {
	return provider.Handle{
		ID:       file.Name,
		URI:      file.URI,
		MIMEType: file.MIMEType,
		State:    fileState(file.State),
	}
}

func fileState(s genai.FileState) provider.State {
	switch s {
	case genai.FileStateActive:
		return provider.StateActive
	case genai.FileStateFailed:
		return provider.StateFailed
	default:
		return provider.StateProcessing
	}
}

func finishReason(r genai.FinishReason) string {
	if r == genai.FinishReasonMaxTokens {
		return provider.FinishMaxTokens
	}
	return string(r)
}

func mimeForPath(path string) string {
	if mt, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "audio/mpeg"
}
