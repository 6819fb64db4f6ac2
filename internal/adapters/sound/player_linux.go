//go:build linux

package sound

import (
	"os/exec"

	"github.com/renato0307/speechtimer/internal/ports"
)

type soundCommand struct {
	cmd  string
	args []string
}

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) error {
	var sounds []soundCommand

	switch eventType {
	case "good":
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	case "great":
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case "too_much":
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/alarm-clock-elapsed.oga"}},
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	default:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return ports.ErrNoSoundPlayer
}
