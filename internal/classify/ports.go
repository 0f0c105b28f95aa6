package classify

import (
	"context"
	"encoding/json"
	"errors"
)

// Messages shared by the proxy and the dashboard.
const (
	MsgTextRequired   = "Text payload required"
	MsgProcessingFail = "NLP Processing Failed"
	MsgConnectionFail = "Failed to connect to Neural Engine."
	ProcessPath       = "/api/process"
)

// Request is the body of POST /api/process.
type Request struct {
	Text string `json:"text"`
}

// Meta is appended by the proxy to every successful result. The model never
// supplies it.
type Meta struct {
	Model     string `json:"model"`
	Provider  string `json:"provider"`
	LatencyMS int64  `json:"latency_ms"`
}

// Result is the model's JSON object, passed through untouched, plus "meta".
// Values stay raw so nothing the model sent is reinterpreted.
type Result map[string]json.RawMessage

// ErrorResult is the body of every 4xx/5xx response.
type ErrorResult struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var ErrInvalidInput = errors.New(MsgTextRequired)

// UpstreamError covers every failure after input validation: transport,
// non-2xx from the provider, unparseable completion.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// Provenance names the model and provider reported in Meta. It comes from
// configuration, never from the completion.
type Provenance struct {
	Model    string
	Provider string
}

// Service classifies one piece of text.
type Service interface {
	Process(ctx context.Context, text string) (Result, error)
}
