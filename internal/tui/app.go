// Package tui draws a dashboard.Session in the terminal.
package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/Vovarama1992/intent-engine/internal/dashboard"
)

type App struct {
	ctx     context.Context
	app     *tview.Application
	session *dashboard.Session
	log     *zap.Logger

	history *tview.List
	result  *tview.TextView
	raw     *tview.TextView
	status  *tview.TextView
	input   *tview.InputField
}

func New(ctx context.Context, session *dashboard.Session, proxyURL string, logger *zap.Logger) *App {
	a := &App{
		ctx:     ctx,
		app:     tview.NewApplication(),
		session: session,
		log:     logger.Named("tui"),
	}
	a.app.EnableMouse(true)
	a.app.EnablePaste(true)

	a.history = tview.NewList().ShowSecondaryText(true)
	a.history.SetTitle("History").SetBorder(true)
	a.history.SetSelectedFunc(func(i int, _ string, _ string, _ rune) {
		entry, ok := a.session.SelectHistory(i)
		if !ok {
			return
		}
		a.input.SetText(entry.Text)
		a.app.SetFocus(a.input)
	})

	a.result = a.textView("Analysis")
	a.raw = a.textView("Raw JSON")

	a.status = tview.NewTextView().SetDynamicColors(true)
	a.status.SetText("[gray]" + tview.Escape(proxyURL) + "[-]")

	a.input = tview.NewInputField().
		SetLabel("> ").
		SetPlaceholder("Type a customer message...").
		SetChangedFunc(a.session.SetInput).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				go a.session.Submit(a.ctx)
			}
		})
	a.input.SetTitle("Input").SetBorder(true)

	a.session.OnChange(func() { a.app.QueueUpdateDraw(a.render) })
	a.session.OnSettled(func(dashboard.Result) {
		a.app.QueueUpdateDraw(func() {
			a.result.ScrollToBeginning()
			a.raw.ScrollToBeginning()
		})
	})

	return a
}

func (a *App) textView(title string) *tview.TextView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)
	tv.SetTitle(title).SetBorder(true)
	return tv
}

func (a *App) layout() tview.Primitive {
	panes := tview.NewFlex().
		AddItem(a.result, 0, 3, false).
		AddItem(a.raw, 0, 2, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(panes, 0, 1, false).
		AddItem(a.input, 3, 0, true).
		AddItem(a.status, 1, 0, false)

	root := tview.NewFlex().
		AddItem(a.history, 36, 0, false).
		AddItem(main, 0, 1, true)

	root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			if a.input.HasFocus() {
				a.app.SetFocus(a.history)
			} else {
				a.app.SetFocus(a.input)
			}
			return nil
		case tcell.KeyEsc:
			a.app.Stop()
			return nil
		}
		return event
	})
	return root
}

// render must run on the tview event loop.
func (a *App) render() {
	snap := a.session.Snapshot()

	a.history.Clear()
	for _, e := range snap.History {
		main, secondary := historyItem(e)
		a.history.AddItem(main, secondary, 0, nil)
	}

	a.result.SetText(renderResult(snap))
	a.raw.SetText(renderRaw(snap))
	a.input.SetDisabled(snap.State == dashboard.StateLoading)
	a.log.Debug("render", zap.Stringer("state", snap.State), zap.Int("history", len(snap.History)))
}

func (a *App) Run() error {
	a.render()
	return a.app.SetRoot(a.layout(), true).SetFocus(a.input).Run()
}
