package classify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(m *MockAI) http.Handler {
	r := chi.NewRouter()
	svc := NewService(m, testProvenance, zap.NewNop())
	RegisterRoutes(r, NewHandler(svc, zap.NewNop()))
	return r
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, ProcessPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleProcessSuccess(t *testing.T) {
	m := new(MockAI)
	m.On("GetReply", mock.Anything, SystemPrompt, "Book a table for two tomorrow").
		Return(`{"intent":"make_reservation","confidence":0.88,"entities":[{"type":"DATETIME","value":"tomorrow"}]}`, nil)

	rec := post(t, newTestRouter(m), `{"text":"Book a table for two tomorrow"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "make_reservation", body["intent"])
	assert.NotContains(t, body, "error")
	meta := body["meta"].(map[string]any)
	assert.Equal(t, "groq-cloud", meta["provider"])
	assert.Contains(t, meta, "latency_ms")
}

func TestHandleProcessMissingText(t *testing.T) {
	m := new(MockAI)
	h := newTestRouter(m)

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":"   "}`, `not json`, ``} {
		rec := post(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Text payload required"}`, rec.Body.String())
	}
	m.AssertNotCalled(t, "GetReply", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleProcessUpstreamFailure(t *testing.T) {
	m := new(MockAI)
	m.On("GetReply", mock.Anything, mock.Anything, mock.Anything).Return("sorry, I cannot comply", nil)

	rec := post(t, newTestRouter(m), `{"text":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NLP Processing Failed", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestHandleProcessKeepsModelTextUnescaped(t *testing.T) {
	m := new(MockAI)
	m.On("GetReply", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"suggested_action":"refund if total > 50 & <ok>"}`, nil)

	rec := post(t, newTestRouter(m), `{"text":"refund please"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"suggested_action":"refund if total > 50 & <ok>"`)
	assert.NotContains(t, rec.Body.String(), `\u003e`)
}
