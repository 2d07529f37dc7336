package provider

// State is the remote processing state of an uploaded file. It is monotonic:
// once Active or Failed it never reverts to Processing.
type State string

const (
	StateProcessing State = "PROCESSING"
	StateActive     State = "ACTIVE"
	StateFailed     State = "FAILED"
)

// Handle identifies a remote upload. Owned exclusively by the analyzer call
// that created it.
type Handle struct {
	ID       string
	URI      string
	MIMEType string
	State    State
}

// GenerateConfig carries the per-call generation parameters.
type GenerateConfig struct {
	Temperature     float32
	MaxOutputTokens int32
}

// FinishMaxTokens marks a completion cut off by the output-token ceiling.
const FinishMaxTokens = "MAX_TOKENS"

// Result is the outcome of a generation call.
type Result struct {
	Text         string
	FinishReason string
}

// Truncated reports whether generation stopped at the output-token ceiling.
func (r Result) Truncated() bool {
	return r.FinishReason == FinishMaxTokens
}
