package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vovarama1992/intent-engine/internal/dashboard"
)

func snapshot(state dashboard.State, body string) dashboard.Snapshot {
	snap := dashboard.Snapshot{State: state}
	if body != "" {
		res := dashboard.NewResult([]byte(body))
		snap.Current = &res
	}
	return snap
}

func TestRenderIdleAndLoading(t *testing.T) {
	assert.Contains(t, renderResult(snapshot(dashboard.StateIdle, "")), "press Enter")
	assert.Contains(t, renderResult(snapshot(dashboard.StateLoading, "")), "Analyzing")
	assert.Empty(t, renderRaw(snapshot(dashboard.StateLoading, "")))
}

func TestRenderResultAppliesDisplayDefaults(t *testing.T) {
	out := renderResult(snapshot(dashboard.StateResult,
		`{"intent":"technical_issue","sentiment":"negative","entities":[{"type":"PRODUCT","name":"router"}],"meta":{"latency_ms":87}}`))

	assert.Contains(t, out, "technical issue")
	assert.Contains(t, out, "0%")
	assert.Contains(t, out, "[red]negative[-]")
	assert.Contains(t, out, "No immediate action required.")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "87ms")
	assert.Contains(t, out, "router")
}

func TestRenderResultWithoutEntities(t *testing.T) {
	out := renderResult(snapshot(dashboard.StateResult, `{"intent":"greeting","entities":[]}`))
	assert.Contains(t, out, "No entities detected.")
}

func TestRenderEscapesModelText(t *testing.T) {
	out := renderResult(snapshot(dashboard.StateResult, `{"intent":"x","suggested_action":"reply [red]now"}`))
	assert.Contains(t, out, "reply [red[]now")
}

func TestRenderError(t *testing.T) {
	out := renderResult(snapshot(dashboard.StateError, `{"error":"Failed to connect to Neural Engine."}`))
	assert.Contains(t, out, "Failed to connect to Neural Engine.")
	assert.Contains(t, out, "The system could not parse the response.")
}

func TestRenderRawShowsDrift(t *testing.T) {
	out := renderRaw(snapshot(dashboard.StateResult, `{"intent":"x","sentiment":"furious"}`))
	assert.Contains(t, out, `"intent": "x"`)
	assert.Contains(t, out, "schema drift")
}

func TestConfidenceBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", barWidth), confidenceBar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), confidenceBar(100))
	assert.Equal(t, strings.Repeat("█", barWidth), confidenceBar(250))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), confidenceBar(50))
}

func TestHistoryItem(t *testing.T) {
	main, secondary := historyItem(dashboard.HistoryEntry{
		Intent: "check_order_status",
		Text:   "Where is my order? It was supposed to arrive last Tuesday already",
		Time:   "14:05:09",
	})
	assert.Equal(t, "check order status", main)
	assert.True(t, strings.HasPrefix(secondary, "14:05:09  Where is my order?"))
	assert.True(t, strings.HasSuffix(secondary, "..."))

	main, _ = historyItem(dashboard.HistoryEntry{Text: "hi", Time: "10:00:00"})
	assert.Equal(t, "-", main)
}
