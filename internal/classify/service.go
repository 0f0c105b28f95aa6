package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/intent-engine/internal/ai"
	"github.com/Vovarama1992/intent-engine/internal/logging"
)

type service struct {
	ai   ai.AI
	prov Provenance
	log  *zap.Logger
	now  func() time.Time
}

func NewService(aiClient ai.AI, prov Provenance, logger *zap.Logger) Service {
	return &service{
		ai:   aiClient,
		prov: prov,
		log:  logger.Named("classify"),
		now:  time.Now,
	}
}

// Process makes exactly one completion call per valid input. The result is
// whatever JSON object the model produced plus server-side meta; no field of
// the model output is checked or defaulted here.
func (s *service) Process(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	log := s.log.With(zap.String("request_id", uuid.NewString()))
	log.Info("classify request", zap.Int("text_len", len(text)))

	start := s.now()
	raw, err := s.ai.GetReply(ctx, SystemPrompt, text)
	latency := s.now().Sub(start)

	if err != nil {
		log.Error("completion failed", zap.Duration("latency", latency), zap.Error(err))
		return nil, &UpstreamError{Err: err}
	}

	if raw == "" {
		raw = "{}"
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		log.Error("completion is not a json object",
			zap.String("raw", logging.Truncate(raw)),
			zap.Error(err),
		)
		return nil, &UpstreamError{Err: fmt.Errorf("parse completion: %w", err)}
	}
	if res == nil {
		// literal null
		res = Result{}
	}

	ms := latency.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	meta, err := json.Marshal(Meta{
		Model:     s.prov.Model,
		Provider:  s.prov.Provider,
		LatencyMS: ms,
	})
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	res["meta"] = meta

	log.Info("classify done",
		zap.Int64("latency_ms", ms),
		zap.String("intent", string(res["intent"])),
	)
	return res, nil
}
