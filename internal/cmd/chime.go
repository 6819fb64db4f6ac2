package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/logging"
	"github.com/renato0307/speechtimer/internal/ports"
)

// ChimeCmd plays the chime of a band
type ChimeCmd struct {
	Band string `arg:"" optional:"" help:"Band to play (good, great, too_much); the default sound when omitted"`

	out io.Writer `kong:"-"`
}

// Run executes the sound playing logic
func (c *ChimeCmd) Run(cli *CLI) error {
	if c.Band == "" {
		logging.Logger.Debug("Playing default chime")
		return c.bellOnMissingPlayer(cli.Container.ChimeService.PlaySound())
	}

	band, err := domain.ParseBand(c.Band)
	if err != nil {
		return err
	}

	err = c.bellOnMissingPlayer(cli.Container.WithChime().ChimeService.Chime(band))
	if err != nil {
		return fmt.Errorf("failed to play %s chime: %w", band, err)
	}
	return nil
}

// bellOnMissingPlayer rings the terminal bell when no sound player is installed
func (c *ChimeCmd) bellOnMissingPlayer(err error) error {
	if !errors.Is(err, ports.ErrNoSoundPlayer) {
		return err
	}

	logging.Logger.Debug("No sound player available, ringing terminal bell")
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprint(out, "\a")
	return err
}
