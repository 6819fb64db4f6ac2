package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SessionState represents where the stopwatch is in its lifecycle.
// There is no paused state.
type SessionState string

const (
	StateIdle    SessionState = "idle"
	StateRunning SessionState = "running"
)

// Session is the one active timing of a speaker
type Session struct {
	ElapsedSeconds int
	ID             string // Log correlation only, assigned on Start
	IsRunning      bool
	SpeakerName    string
}

// State reports the lifecycle state of the session
func (s Session) State() SessionState {
	if s.IsRunning {
		return StateRunning
	}
	return StateIdle
}

// Stopwatch owns the session, its background colour, the history and the
// tick generation. Ticks carry the generation they were issued for; any tick
// whose generation is not the live one is ignored, which is how stop and
// reset cancel an in-flight tick.
type Stopwatch struct {
	background string
	generation int
	history    History
	live       bool // Whether generation is currently held by a running session
	session    Session
}

// NewStopwatch creates an idle stopwatch with an empty history
func NewStopwatch() *Stopwatch {
	return &Stopwatch{background: ColorDefault}
}

// Session returns a snapshot of the current session
func (s *Stopwatch) Session() Session {
	return s.session
}

// Background returns the current background colour
func (s *Stopwatch) Background() string {
	return s.background
}

// History returns the session history
func (s *Stopwatch) History() *History {
	return &s.history
}

// IsRunning reports whether a session is being timed
func (s *Stopwatch) IsRunning() bool {
	return s.session.IsRunning
}

// Generation returns the live tick generation and whether one is held
func (s *Stopwatch) Generation() (int, bool) {
	return s.generation, s.live
}

// SetSpeakerName updates the name. The name is locked while running; the
// call is ignored and reports false.
func (s *Stopwatch) SetSpeakerName(name string) bool {
	if s.session.IsRunning {
		return false
	}
	s.session.SpeakerName = name
	return true
}

// Start begins timing the current speaker and returns the tick generation
// the caller must tag its ticks with. The background colour is left as is.
func (s *Stopwatch) Start() (int, error) {
	if s.session.IsRunning {
		return 0, ErrAlreadyRunning
	}
	if strings.TrimSpace(s.session.SpeakerName) == "" {
		return 0, ErrBlankSpeakerName
	}

	s.session.IsRunning = true
	s.session.ID = uuid.New().String()
	s.generation++
	s.live = true
	return s.generation, nil
}

// Tick advances the elapsed time by one second if gen is the live
// generation. It reports whether the tick was applied.
func (s *Stopwatch) Tick(gen int) bool {
	if !s.session.IsRunning || !s.live || gen != s.generation {
		return false
	}
	s.session.ElapsedSeconds++
	s.background = NextBackground(s.background, s.session.ElapsedSeconds)
	return true
}

// Stop ends the session, records it in the history and resets.
func (s *Stopwatch) Stop() (HistoryEntry, error) {
	if !s.session.IsRunning {
		return HistoryEntry{}, ErrNotRunning
	}

	s.session.IsRunning = false
	s.release()

	entry := HistoryEntry{
		Color:    s.background,
		Duration: s.session.ElapsedSeconds,
		Name:     s.session.SpeakerName,
	}
	s.history.Append(entry)

	s.Reset()
	return entry, nil
}

// Reset discards the current session without recording it. History is kept.
func (s *Stopwatch) Reset() {
	s.release()
	s.session = Session{}
	s.background = ColorDefault
}

// release invalidates the live tick generation
func (s *Stopwatch) release() {
	if s.live {
		s.generation++
		s.live = false
	}
}
