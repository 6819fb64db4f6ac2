//go:build windows

package sound

import (
	"os/exec"

	"github.com/renato0307/speechtimer/internal/ports"
)

// playForEvent plays sounds on Windows using PowerShell
func playForEvent(eventType string) error {
	var soundCommands []string

	switch eventType {
	case "good":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case "great":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Question.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case "too_much":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Hand.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return ports.ErrNoSoundPlayer
}
