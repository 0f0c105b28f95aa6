package classify

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, log: logger.Named("http")}
}

// HandleProcess serves POST /api/process.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	var payload Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Debug("bad request body", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, ErrorResult{Error: MsgTextRequired})
		return
	}

	res, err := h.svc.Process(r.Context(), payload.Text)
	if errors.Is(err, ErrInvalidInput) {
		h.writeJSON(w, http.StatusBadRequest, ErrorResult{Error: MsgTextRequired})
		return
	}
	if err != nil {
		h.writeJSON(w, http.StatusInternalServerError, ErrorResult{
			Error:   MsgProcessingFail,
			Details: err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	// model text is passed through as written
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		h.log.Warn("write response", zap.Int("status", status), zap.Error(err))
	}
}
