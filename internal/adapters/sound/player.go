package sound

// Player implements ports.SoundPlayer
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the signal for the last band (default)
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent("too_much")
}

// PlaySoundForEvent plays a different sound per band.
// Platform-specific implementations are in player_*.go files with build tags.
// When no player can be run it returns ports.ErrNoSoundPlayer and the caller
// rings the terminal bell on the output it owns.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}
