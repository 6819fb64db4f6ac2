package ui

import "github.com/renato0307/speechtimer/internal/domain"

// tickMsg advances the stopwatch by one second. It carries the generation
// it was scheduled for; ticks of a released generation are dropped.
type tickMsg struct {
	generation int
}

// chimeFailedMsg reports that the band chime could not be played
type chimeFailedMsg struct {
	band domain.Band
	err  error
}

// bellRungMsg ends the frame that carried the terminal bell
type bellRungMsg struct{}

// historyCopiedMsg reports the outcome of copying the history to the clipboard
type historyCopiedMsg struct {
	entries int
	err     error
}

// clearErrorMsg clears the error line after the configured delay
type clearErrorMsg struct {
	seq int
}
