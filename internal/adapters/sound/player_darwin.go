//go:build darwin

package sound

import (
	"os/exec"

	"github.com/renato0307/speechtimer/internal/ports"
)

// playForEvent plays sounds on macOS using afplay
func playForEvent(eventType string) error {
	var soundFiles []string

	// Brighter sounds as the speaker gets closer to the limit
	switch eventType {
	case "good":
		soundFiles = []string{
			"/System/Library/Sounds/Tink.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case "great":
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Ping.aiff",
		}
	case "too_much":
		soundFiles = []string{
			"/System/Library/Sounds/Sosumi.aiff",
			"/System/Library/Sounds/Basso.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return ports.ErrNoSoundPlayer
}
