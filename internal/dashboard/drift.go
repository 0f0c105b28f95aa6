package dashboard

import (
	"encoding/json"
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema mirrors the shape the system prompt asks the model for.
const resultSchema = `{
  "type": "object",
  "required": ["intent", "confidence", "sentiment", "entities", "meta"],
  "properties": {
    "intent": {"type": "string", "minLength": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "category": {"type": "string"},
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "value": {"type": "string"}
        }
      }
    },
    "sentiment": {"enum": ["positive", "negative", "neutral"]},
    "suggested_action": {"type": "string"},
    "language": {"type": "string"},
    "meta": {
      "type": "object",
      "required": ["model", "provider", "latency_ms"]
    }
  }
}`

var driftSchema = jsonschema.MustCompileString("classification.schema.json", resultSchema)

// Drift lists where a successful result departs from the instructed schema.
// It is a report for the raw pane only; a drifting result is still shown.
func (r Result) Drift() []string {
	if r.IsError() {
		return nil
	}
	var v any
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return []string{"body is not valid JSON"}
	}

	err := driftSchema.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	return leafCauses(ve, nil)
}

func leafCauses(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return append(out, loc+": "+ve.Message)
	}
	for _, c := range ve.Causes {
		out = leafCauses(c, out)
	}
	return out
}
