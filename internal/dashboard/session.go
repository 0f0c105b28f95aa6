package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// HistoryEntry records one successful submission.
type HistoryEntry struct {
	ID     int64 // unix millis at settlement
	Text   string
	Intent string
	Time   string
}

// Snapshot is a consistent copy of the session for rendering.
type Snapshot struct {
	State   State
	Input   string
	Current *Result
	History []HistoryEntry
}

// Session is the state of one dashboard user. It is created when the
// dashboard starts and dropped when it exits; nothing is persisted.
type Session struct {
	proxy Proxy
	log   *zap.Logger
	now   func() time.Time

	mu        sync.Mutex
	inFlight  bool
	state     State
	input     string
	current   *Result
	history   []HistoryEntry
	onChange  func()
	onSettled func(Result)
}

func NewSession(proxy Proxy, logger *zap.Logger) *Session {
	return &Session{
		proxy: proxy,
		log:   logger.Named("session"),
		now:   time.Now,
	}
}

// OnChange registers fn to run after every state transition.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// OnSettled registers fn to run once per settled submission, success or error.
func (s *Session) OnSettled(fn func(Result)) {
	s.mu.Lock()
	s.onSettled = fn
	s.mu.Unlock()
}

// SetInput mirrors the input field. It does not trigger OnChange.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a submission is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

func (s *Session) Current() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Result{}, false
	}
	return *s.current, true
}

func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:   s.state,
		Input:   s.input,
		History: make([]HistoryEntry, len(s.history)),
	}
	copy(snap.History, s.history)
	if s.current != nil {
		cur := *s.current
		snap.Current = &cur
	}
	return snap
}

// SelectHistory copies the text of history entry i into the input. It does
// not resubmit and leaves the displayed result alone.
func (s *Session) SelectHistory(i int) (HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.history) {
		return HistoryEntry{}, false
	}
	entry := s.history[i]
	s.input = entry.Text
	return entry, true
}

// Submit sends the current input to the proxy and blocks until it settles.
// It returns false without doing anything when the input is blank or another
// submission is still in flight.
func (s *Session) Submit(ctx context.Context) bool {
	s.mu.Lock()
	text := s.input
	if strings.TrimSpace(text) == "" || s.inFlight {
		s.mu.Unlock()
		return false
	}
	s.inFlight = true
	s.state = StateLoading
	s.current = nil
	s.mu.Unlock()
	s.changed()

	res, err := s.proxy.Process(ctx, text)
	if err != nil {
		s.log.Warn("proxy unreachable", zap.Error(err))
		res = connectionFailure()
	}

	s.mu.Lock()
	s.inFlight = false
	s.current = &res
	if res.IsError() {
		s.state = StateError
		s.log.Info("submission failed", zap.String("error", res.ErrorMessage()))
	} else {
		s.state = StateResult
		now := s.now()
		s.history = append([]HistoryEntry{{
			ID:     now.UnixMilli(),
			Text:   text,
			Intent: res.Intent(),
			Time:   now.Format("15:04:05"),
		}}, s.history...)
		s.log.Info("submission settled", zap.String("intent", res.Intent()))
	}
	settled := s.onSettled
	s.mu.Unlock()

	s.changed()
	if settled != nil {
		settled(res)
	}
	return true
}

func (s *Session) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
