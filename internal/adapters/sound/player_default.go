//go:build !darwin && !linux && !windows

package sound

import "github.com/renato0307/speechtimer/internal/ports"

// playForEvent has no player to run on unknown platforms
func playForEvent(eventType string) error {
	return ports.ErrNoSoundPlayer
}
