package ai

import (
	"context"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Vovarama1992/intent-engine/internal/logging"
)

// Options configure the OpenAI-compatible endpoint. Groq, OpenAI and any
// other server speaking the chat-completions protocol work through BaseURL.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	// Timeout bounds a single completion call. Zero means no limit.
	Timeout time.Duration
}

type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	log       *zap.Logger
}

func NewOpenAIClient(opts Options, logger *zap.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: opts.MaxTokens,
		log:       logger.Named("ai"),
	}
}

func (c *OpenAIClient) GetReply(
	ctx context.Context,
	systemPrompt string,
	text string,
) (string, error) {

	exchange := Exchange(systemPrompt, text)
	msgs := make([]openai.ChatCompletionMessage, 0, len(exchange))
	for _, m := range exchange {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
		// a literal 0 is dropped by omitempty and the provider default applies
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		c.log.Warn("completion failed", zap.String("model", c.model), zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("empty choices", zap.String("model", c.model))
		return "", nil
	}

	raw := resp.Choices[0].Message.Content
	c.log.Debug("raw completion",
		zap.String("model", c.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.String("content", logging.Truncate(raw)),
	)

	return raw, nil
}
