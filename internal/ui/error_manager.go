package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/speechtimer/internal/logging"
)

// ErrorManager holds the transient error shown under the controls. Each
// error gets a sequence number so a clear scheduled for an older error
// cannot wipe a newer one.
type ErrorManager struct {
	clearDelay time.Duration
	current    error
	seq        int
}

// NewErrorManager creates an ErrorManager that clears errors after clearDelay.
// A zero delay keeps errors until the next one replaces them.
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// Show displays err and returns the command that will clear it
func (em *ErrorManager) Show(err error) tea.Cmd {
	em.seq++
	em.current = err
	logging.Logger.Debug("Showing error", "error", err, "seq", em.seq)

	if em.clearDelay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// Clear removes the error if msg belongs to the error currently shown
func (em *ErrorManager) Clear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.current = nil
	}
}

// Err returns the error currently shown, if any
func (em *ErrorManager) Err() error {
	return em.current
}

// HasError reports whether an error is shown
func (em *ErrorManager) HasError() bool {
	return em.current != nil
}
