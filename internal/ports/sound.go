package ports

import "errors"

// ErrNoSoundPlayer is returned when no platform player could play the sound.
// Callers fall back to the terminal bell.
var ErrNoSoundPlayer = errors.New("no sound player available")

// SoundPlayer plays signal sounds
type SoundPlayer interface {
	// PlaySound plays the default signal sound
	PlaySound() error

	// PlaySoundForEvent plays the sound for a specific event.
	// Events are band names (good, great, too_much).
	PlaySoundForEvent(eventType string) error
}
