package analyzer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpload means the segment could not be submitted to the provider.
	ErrUpload = errors.New("segment upload failed")
	// ErrProcessingTimeout means the upload stayed in PROCESSING past the
	// configured ceiling.
	ErrProcessingTimeout = errors.New("remote file processing timed out")
	// ErrProcessingFailed means the provider reported the upload as FAILED.
	ErrProcessingFailed = errors.New("remote file processing failed")
)

// ProviderErrorKind classifies generation-call failures by their cause.
type ProviderErrorKind int

const (
	KindModelNotSupported ProviderErrorKind = iota
	KindFeatureNotSupported
	KindOther
)

// ProviderError wraps a failed generation call with its classified cause.
type ProviderError struct {
	Kind  ProviderErrorKind
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case KindModelNotSupported:
		return fmt.Sprintf("model %s does not support audio input: %v", e.Model, e.Err)
	case KindFeatureNotSupported:
		return fmt.Sprintf("audio processing is not supported for this API key (model %s): %v", e.Model, e.Err)
	default:
		return fmt.Sprintf("provider call failed (model %s): %v", e.Model, e.Err)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyProviderError maps a raw provider error onto the taxonomy by
// inspecting its message, the only signal the provider exposes.
func classifyProviderError(model string, err error) *ProviderError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return &ProviderError{Kind: KindModelNotSupported, Model: model, Err: err}
	case strings.Contains(msg, "not supported"):
		return &ProviderError{Kind: KindFeatureNotSupported, Model: model, Err: err}
	default:
		return &ProviderError{Kind: KindOther, Model: model, Err: err}
	}
}
