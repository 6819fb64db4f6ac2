package services

import (
	"golang.org/x/sync/singleflight"

	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/logging"
	"github.com/renato0307/speechtimer/internal/ports"
)

// ChimeService signals the speaker when the timer crosses into a new band
type ChimeService struct {
	enabled     bool
	group       singleflight.Group
	soundPlayer ports.SoundPlayer
}

// NewChimeService creates a new ChimeService
func NewChimeService(soundPlayer ports.SoundPlayer, enabled bool) *ChimeService {
	return &ChimeService{
		enabled:     enabled,
		soundPlayer: soundPlayer,
	}
}

// Enabled reports whether band changes should be signalled
func (s *ChimeService) Enabled() bool {
	return s != nil && s.enabled
}

// CrossedBand reports the band entered when the elapsed time went from
// previous to current seconds. Only upward crossings count.
func CrossedBand(previous, current int) (domain.Band, bool) {
	from := domain.BandFor(previous)
	to := domain.BandFor(current)
	if to > from {
		return to, true
	}
	return from, false
}

// Chime plays the sound for a band. Calls that overlap an in-progress play
// share its result instead of starting another player.
func (s *ChimeService) Chime(band domain.Band) error {
	_, err, shared := s.group.Do("chime", func() (any, error) {
		logging.Logger.Debug("Playing chime", "band", band.String())
		return nil, s.soundPlayer.PlaySoundForEvent(band.String())
	})
	if err != nil {
		logging.Logger.Warn("Failed to play chime", "band", band.String(), "error", err)
		return err
	}
	if shared {
		logging.Logger.Debug("Chime collapsed into in-flight play", "band", band.String())
	}
	return nil
}

// PlaySound plays the default chime
func (s *ChimeService) PlaySound() error {
	return s.soundPlayer.PlaySound()
}
