package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/Vovarama1992/intent-engine/internal/dashboard"
)

const barWidth = 20

func renderResult(snap dashboard.Snapshot) string {
	if snap.State == dashboard.StateLoading {
		return "[yellow]Analyzing...[-]"
	}
	if snap.Current == nil {
		return "[gray]Type a message and press Enter to classify it.[-]"
	}
	res := *snap.Current
	if res.IsError() {
		return renderError(res)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[::b]INTENT[::-]      [white::b]%s[-::-]\n", esc(res.IntentLabel()))
	fmt.Fprintf(&b, "[::b]CONFIDENCE[::-]  [cyan]%s %d%%[-]\n",
		confidenceBar(res.ConfidencePercent()), res.ConfidencePercent())
	fmt.Fprintf(&b, "[::b]SENTIMENT[::-]   [%s]%s[-]\n", sentimentColor(res.Sentiment()), esc(res.Sentiment()))
	fmt.Fprintf(&b, "[::b]ACTION[::-]      %s\n\n", esc(res.SuggestedAction()))

	latency := ""
	if ms, ok := res.LatencyMS(); ok {
		latency = fmt.Sprintf("%d", ms)
	}
	fmt.Fprintf(&b, "[::b]LATENCY[::-]     [green]%sms[-]\n", latency)
	fmt.Fprintf(&b, "[::b]MODEL[::-]       %s\n", esc(res.Model()))
	fmt.Fprintf(&b, "[::b]PROVIDER[::-]    %s\n", esc(res.Provider()))
	fmt.Fprintf(&b, "[::b]CATEGORY[::-]    [orange]%s[-]\n", esc(res.Category()))
	if lang := res.Language(); lang != "" {
		fmt.Fprintf(&b, "[::b]LANGUAGE[::-]    %s\n", esc(lang))
	}

	b.WriteString("\n[::b]ENTITIES[::-]\n")
	entities := res.Entities()
	if len(entities) == 0 {
		b.WriteString("[gray]No entities detected.[-]\n")
	}
	for _, e := range entities {
		fmt.Fprintf(&b, "  [purple]%s[-]  %s\n", esc(e.Type), esc(e.Value))
	}
	return b.String()
}

func renderError(res dashboard.Result) string {
	return fmt.Sprintf("[red::b]%s[-::-]\n[red]%s[-]\n", esc(res.ErrorMessage()), esc(res.ErrorDetails()))
}

// renderRaw shows the body as received plus any schema drift.
func renderRaw(snap dashboard.Snapshot) string {
	if snap.Current == nil {
		return ""
	}
	res := *snap.Current
	out := esc(res.Pretty())
	if drift := res.Drift(); len(drift) > 0 {
		out += "\n[yellow]schema drift:[-]\n"
		for _, d := range drift {
			out += "[yellow]- " + esc(d) + "[-]\n"
		}
	}
	return out
}

func confidenceBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func sentimentColor(sentiment string) string {
	switch sentiment {
	case "positive":
		return "green"
	case "negative":
		return "red"
	default:
		return "blue"
	}
}

func historyItem(e dashboard.HistoryEntry) (string, string) {
	intent := strings.ReplaceAll(e.Intent, "_", " ")
	if intent == "" {
		intent = "-"
	}
	text := e.Text
	if r := []rune(text); len(r) > 40 {
		text = string(r[:40]) + "..."
	}
	return esc(intent), esc(e.Time + "  " + text)
}

func esc(s string) string { return tview.Escape(s) }
