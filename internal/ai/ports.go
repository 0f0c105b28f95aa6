package ai

import "context"

// AI is the external completion service. It knows nothing about intents or
// the dashboard: it takes a system instruction plus user text and returns the
// raw completion text.
type AI interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		text string,
	) (string, error)
}

// Message is one entry of the chat exchange sent to the model.
type Message struct {
	Role string // "system" | "user"
	Text string
}

// Exchange is the fixed two-message conversation: instruction first, then the
// user text verbatim.
func Exchange(systemPrompt, text string) []Message {
	return []Message{
		{Role: "system", Text: systemPrompt},
		{Role: "user", Text: text},
	}
}
