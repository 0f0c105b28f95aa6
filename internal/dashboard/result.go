package dashboard

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/Vovarama1992/intent-engine/internal/classify"
)

const (
	DefaultCategory     = "General"
	DefaultAction       = "No immediate action required."
	DefaultErrorDetails = "The system could not parse the response."
)

// Result is a proxy response body kept as received. Every accessor reads
// leniently and falls back to a display default; nothing is validated.
type Result struct {
	raw []byte
}

func NewResult(raw []byte) Result {
	return Result{raw: raw}
}

// NewErrorResult builds an error body locally, in the same shape the proxy
// uses, so rendering has a single error path.
func NewErrorResult(message, details string) Result {
	b, _ := json.Marshal(classify.ErrorResult{Error: message, Details: details})
	return Result{raw: b}
}

func connectionFailure() Result {
	return NewErrorResult(classify.MsgConnectionFail, "")
}

type Entity struct {
	Type  string
	Value string
}

func (r Result) Raw() []byte { return r.raw }

func (r Result) get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// IsError reports whether the body is an ErrorResult. A null, false or empty
// "error" key on an otherwise normal classification does not count.
func (r Result) IsError() bool {
	v := r.get("error")
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	}
	return true
}

func (r Result) Intent() string { return r.get("intent").String() }

// IntentLabel is the intent with underscores shown as spaces.
func (r Result) IntentLabel() string {
	return strings.ReplaceAll(r.Intent(), "_", " ")
}

func (r Result) Confidence() float64 { return r.get("confidence").Float() }

func (r Result) ConfidencePercent() int {
	return int(math.Round(r.Confidence() * 100))
}

func (r Result) Category() string {
	return orDefault(r.get("category").String(), DefaultCategory)
}

func (r Result) Sentiment() string { return r.get("sentiment").String() }

func (r Result) SuggestedAction() string {
	return orDefault(r.get("suggested_action").String(), DefaultAction)
}

func (r Result) Language() string { return r.get("language").String() }

// Entities accepts either "value" or "name" as the display text.
func (r Result) Entities() []Entity {
	list := r.get("entities")
	if !list.IsArray() {
		return nil
	}
	var out []Entity
	list.ForEach(func(_, e gjson.Result) bool {
		out = append(out, Entity{
			Type:  e.Get("type").String(),
			Value: orDefault(e.Get("value").String(), e.Get("name").String()),
		})
		return true
	})
	return out
}

// LatencyMS returns meta.latency_ms and whether it was present.
func (r Result) LatencyMS() (int64, bool) {
	v := r.get("meta.latency_ms")
	return v.Int(), v.Exists()
}

func (r Result) Model() string    { return r.get("meta.model").String() }
func (r Result) Provider() string { return r.get("meta.provider").String() }

func (r Result) ErrorMessage() string { return r.get("error").String() }

func (r Result) ErrorDetails() string {
	return orDefault(r.get("details").String(), DefaultErrorDetails)
}

// Pretty is the raw body indented for display.
func (r Result) Pretty() string {
	if !gjson.ValidBytes(r.raw) {
		return string(r.raw)
	}
	return string(pretty.Pretty(r.raw))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
