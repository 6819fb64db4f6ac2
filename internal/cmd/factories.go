package cmd

import (
	adaptersound "github.com/renato0307/speechtimer/internal/adapters/sound"
	"github.com/renato0307/speechtimer/internal/ports"
	"github.com/renato0307/speechtimer/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	ChimeService *services.ChimeService

	soundPlayer ports.SoundPlayer
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(chimeEnabled bool) *Container {
	return newContainer(adaptersound.NewPlayer(), chimeEnabled)
}

func newContainer(soundPlayer ports.SoundPlayer, chimeEnabled bool) *Container {
	return &Container{
		ChimeService: services.NewChimeService(soundPlayer, chimeEnabled),
		soundPlayer:  soundPlayer,
	}
}

// WithChime returns a copy of the container with the band chime switched on
func (c *Container) WithChime() *Container {
	return newContainer(c.soundPlayer, true)
}
