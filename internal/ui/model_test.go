package ui

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/speechtimer/internal/config"
	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/ports"
	portsmocks "github.com/renato0307/speechtimer/internal/ports/mocks"
	"github.com/renato0307/speechtimer/internal/services"
	"github.com/renato0307/speechtimer/internal/teatest"
)

type timerDriver struct {
	*teatest.Driver
}

func newTimerDriver(t *testing.T, cfg ModelConfig) *timerDriver {
	t.Helper()
	if cfg.ErrorClearDelay == 0 {
		cfg.ErrorClearDelay = 10 * time.Second
	}
	d := teatest.New(t, NewModel(cfg), teatest.WithSize(100, 40))
	d.DrainInit()
	return &timerDriver{Driver: d}
}

func (d *timerDriver) model() *Model {
	return d.Model.(*Model)
}

// tick delivers the pending tick of the live generation. Real ticks are
// one second apart and are skipped by the driver.
func (d *timerDriver) tick(n int) {
	d.T.Helper()
	for range n {
		gen, live := d.model().Stopwatch().Generation()
		require.True(d.T, live, "no live tick generation")
		d.Send(tickMsg{generation: gen})
	}
}

func (d *timerDriver) startSpeaker(name string) {
	d.T.Helper()
	d.Type(name)
	d.PressEnter()
	require.True(d.T, d.model().Stopwatch().IsRunning())
}

func TestModel_StartWithBlankNameShowsAlert(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.Type("   ")
	d.PressEnter()

	m := d.model()
	assert.Equal(t, stateAlert, m.state)
	assert.False(t, m.Stopwatch().IsRunning())
	assert.Equal(t, 0, m.Stopwatch().Session().ElapsedSeconds)
	assert.Equal(t, domain.ColorDefault, m.Stopwatch().Background())
	alert, ok := m.alert.Content().(*Alert)
	require.True(t, ok)
	assert.Equal(t, "Please enter a speaker name", alert.Message())

	_, live := m.Stopwatch().Generation()
	assert.False(t, live)
}

func TestModel_AlertSwallowsInputUntilDismissed(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.PressEnter()
	require.Equal(t, stateAlert, d.model().state)

	d.Type("Bo")
	d.PressKey('s')
	assert.Equal(t, stateAlert, d.model().state)
	assert.Empty(t, d.model().nameInput.Value())

	d.PressEsc()
	assert.Equal(t, stateTimer, d.model().state)
	assert.False(t, d.Quitting)

	d.Type("Ana")
	assert.Equal(t, "Ana", d.model().nameInput.Value())
}

func TestModel_LongSpeakerNameIsKept(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})
	name := strings.TrimSpace(strings.Repeat("Maria da Conceicao ", 6))

	d.startSpeaker(name)
	d.tick(3)
	d.PressKey('s')

	require.Equal(t, 1, d.model().Stopwatch().History().Len())
	assert.Equal(t, name, d.model().Stopwatch().History().Entries()[0].Name)
}

func TestModel_AlertClosesOnEnter(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.PressEnter()
	require.Equal(t, stateAlert, d.model().state)

	d.PressEnter()
	assert.Equal(t, stateTimer, d.model().state)
	assert.False(t, d.Quitting)
	assert.False(t, d.model().Stopwatch().IsRunning())

	d.Type("Ana")
	d.PressEnter()
	assert.Equal(t, stateTimer, d.model().state)
	assert.True(t, d.model().Stopwatch().IsRunning())
	assert.Equal(t, "Ana", d.model().Stopwatch().Session().SpeakerName)
}

func TestModel_StartStopRecordsHistory(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ana")
	d.tick(25)

	m := d.model()
	assert.Equal(t, 25, m.Stopwatch().Session().ElapsedSeconds)
	assert.Equal(t, domain.ColorGreen, m.Stopwatch().Background())

	d.PressKey('s')

	entries := m.Stopwatch().History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.HistoryEntry{Color: domain.ColorGreen, Duration: 25, Name: "Ana"}, entries[0])

	session := m.Stopwatch().Session()
	assert.Equal(t, 0, session.ElapsedSeconds)
	assert.False(t, session.IsRunning)
	assert.Empty(t, session.SpeakerName)
	assert.Empty(t, m.nameInput.Value())
	assert.Equal(t, domain.ColorDefault, m.Stopwatch().Background())
}

func TestModel_StaleTickAfterStopIsDropped(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ana")
	d.tick(3)
	gen, _ := d.model().Stopwatch().Generation()

	d.PressKey('s')
	d.Send(tickMsg{generation: gen})

	assert.Equal(t, 0, d.model().Stopwatch().Session().ElapsedSeconds)
	assert.Equal(t, domain.ColorDefault, d.model().Stopwatch().Background())
}

func TestModel_ResetWhileRunningDiscardsSession(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ben")
	d.tick(35)
	gen, _ := d.model().Stopwatch().Generation()

	d.Press(tea.KeyCtrlR)

	m := d.model()
	assert.Equal(t, 0, m.Stopwatch().History().Len())
	assert.False(t, m.Stopwatch().IsRunning())
	assert.Equal(t, 0, m.Stopwatch().Session().ElapsedSeconds)
	assert.Equal(t, domain.ColorDefault, m.Stopwatch().Background())
	assert.Empty(t, m.nameInput.Value())

	d.Send(tickMsg{generation: gen})
	assert.Equal(t, 0, m.Stopwatch().Session().ElapsedSeconds)
}

func TestModel_DoubleStartKeepsOneTickChain(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ana")
	gen, _ := d.model().Stopwatch().Generation()

	d.PressEnter()
	assert.Nil(t, d.model().Start())

	current, live := d.model().Stopwatch().Generation()
	assert.True(t, live)
	assert.Equal(t, gen, current)

	d.tick(1)
	assert.Equal(t, 1, d.model().Stopwatch().Session().ElapsedSeconds)
}

func TestModel_NameLockedWhileRunning(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ana")
	d.Type("bc")

	assert.Equal(t, "Ana", d.model().nameInput.Value())
	assert.Equal(t, "Ana", d.model().Stopwatch().Session().SpeakerName)
}

func TestModel_BackgroundFollowsBands(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})
	d.startSpeaker("Ana")

	steps := []struct {
		ticks int
		color string
	}{
		{19, domain.ColorDefault},
		{1, domain.ColorGreen},
		{9, domain.ColorGreen},
		{1, domain.ColorYellow},
		{9, domain.ColorYellow},
		{1, domain.ColorRed},
	}

	for _, step := range steps {
		d.tick(step.ticks)
		assert.Equal(t, step.color, d.model().Stopwatch().Background(),
			"elapsed %d", d.model().Stopwatch().Session().ElapsedSeconds)
	}
}

func TestModel_ToggleTimerOnlyWhileRunning(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	// Idle: "t" is just text for the name field
	d.PressKey('t')
	assert.True(t, d.model().timerVisible)
	assert.Equal(t, "t", d.model().nameInput.Value())

	d.Press(tea.KeyBackspace)
	d.startSpeaker("Ana")
	d.tick(2)

	d.PressKey('t')
	assert.False(t, d.model().timerVisible)
	assert.Contains(t, d.View(), "timer hidden")
	assert.NotContains(t, d.View(), "00:02")

	d.tick(1)
	assert.Equal(t, 3, d.model().Stopwatch().Session().ElapsedSeconds)

	d.Press(tea.KeyCtrlR)
	assert.True(t, d.model().timerVisible)
	assert.Contains(t, d.View(), "00:00")
}

func TestModel_HistoryPanel(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	for _, s := range []struct {
		name  string
		ticks int
	}{
		{"Ana", 10},
		{"Ben", 25},
		{"Cleo", 45},
	} {
		d.startSpeaker(s.name)
		d.tick(s.ticks)
		d.PressKey('s')
	}

	assert.NotContains(t, d.View(), "Too Much (40+ seconds)")

	d.Press(tea.KeyTab)

	m := d.model()
	assert.True(t, m.historyVisible)
	view := d.View()
	for _, band := range domain.AllBands {
		assert.Contains(t, view, band.Title())
	}
	assert.Contains(t, view, "Ana: 00:10")
	assert.Contains(t, view, "Ben: 00:25")
	assert.Contains(t, view, "Cleo: 00:45")

	cats := m.history.Categories()
	assert.Len(t, cats.Okay, 1)
	assert.Len(t, cats.Good, 1)
	assert.Empty(t, cats.Great)
	assert.Len(t, cats.TooMuch, 1)

	d.Press(tea.KeyShiftTab)
	assert.Equal(t, domain.BandGood, m.history.Focused())

	d.Press(tea.KeyTab)
	assert.False(t, m.historyVisible)
}

func TestModel_HistoryKeysDisabledWhilePanelHidden(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.Press(tea.KeyShiftTab)
	assert.Equal(t, domain.BandOkay, d.model().history.Focused())
}

func TestModel_ChimeOnBandChange(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent("good").Return(nil).Once()
	soundPlayer.EXPECT().PlaySoundForEvent("great").Return(nil).Once()

	d := newTimerDriver(t, ModelConfig{Chime: services.NewChimeService(soundPlayer, true)})
	d.startSpeaker("Ana")
	d.tick(35)
}

func TestModel_ChimeDisabledPlaysNothing(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)

	d := newTimerDriver(t, ModelConfig{Chime: services.NewChimeService(soundPlayer, false)})
	d.startSpeaker("Ana")
	d.tick(45)

	soundPlayer.AssertNotCalled(t, "PlaySoundForEvent", "good")
}

func TestModel_ChimeFailureIsShownNotFatal(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent("good").Return(errors.New("no audio device")).Once()

	d := newTimerDriver(t, ModelConfig{Chime: services.NewChimeService(soundPlayer, true)})
	d.startSpeaker("Ana")
	d.tick(21)

	m := d.model()
	require.True(t, m.errorManager.HasError())
	assert.ErrorContains(t, m.errorManager.Err(), "no audio device")
	assert.Equal(t, 21, m.Stopwatch().Session().ElapsedSeconds)
	assert.True(t, m.Stopwatch().IsRunning())

	d.Send(clearErrorMsg{seq: m.errorManager.seq})
	assert.False(t, m.errorManager.HasError())
}

func TestModel_MissingSoundPlayerRingsBellThroughView(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent("good").Return(ports.ErrNoSoundPlayer).Once()

	d := newTimerDriver(t, ModelConfig{Chime: services.NewChimeService(soundPlayer, true)})
	d.startSpeaker("Ana")
	d.tick(20)

	m := d.model()
	assert.False(t, m.errorManager.HasError())
	assert.True(t, strings.HasPrefix(d.View(), "\a"))
	assert.Equal(t, 1, strings.Count(d.View(), "\a"))

	d.Send(bellRungMsg{})
	assert.NotContains(t, d.View(), "\a")
	assert.True(t, m.Stopwatch().IsRunning())
}

func TestModel_QuitReleasesTick(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.startSpeaker("Ana")
	d.tick(5)
	gen, _ := d.model().Stopwatch().Generation()

	d.PressEsc()
	require.True(t, d.Quitting)

	_, live := d.model().Stopwatch().Generation()
	assert.False(t, live)
	assert.False(t, d.model().Stopwatch().Tick(gen))
}

func TestModel_ForceQuitFromAlert(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.PressEnter()
	require.Equal(t, stateAlert, d.model().state)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestModel_HelpScreen(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	d.Press(tea.KeyF1)
	require.Equal(t, stateHelp, d.model().state)
	assert.Contains(t, d.View(), "Keyboard shortcuts")
	assert.Contains(t, d.View(), "start timing the speaker")

	d.PressEsc()
	assert.Equal(t, stateTimer, d.model().state)
	assert.False(t, d.Quitting)
}

func TestModel_CustomKeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		keys     config.KeyBindingsConfig
		validate func(t *testing.T, d *timerDriver)
	}{
		{
			name: "stop rebound to a letter",
			keys: config.KeyBindingsConfig{"stop": {"x"}},
			validate: func(t *testing.T, d *timerDriver) {
				d.startSpeaker("Ana")
				d.tick(4)

				d.PressKey('s')
				assert.True(t, d.model().Stopwatch().IsRunning())

				d.PressKey('x')
				assert.False(t, d.model().Stopwatch().IsRunning())
				require.Equal(t, 1, d.model().Stopwatch().History().Len())
				assert.Equal(t, 4, d.model().Stopwatch().History().Entries()[0].Duration)
			},
		},
		{
			name: "quit rebound leaves stop reachable",
			keys: config.KeyBindingsConfig{"quit": {"ctrl+q"}},
			validate: func(t *testing.T, d *timerDriver) {
				d.startSpeaker("Ana")
				d.tick(25)

				d.PressKey('s')
				assert.False(t, d.Quitting)
				require.Equal(t, 1, d.model().Stopwatch().History().Len())
				assert.Equal(t, domain.ColorGreen, d.model().Stopwatch().History().Entries()[0].Color)

				d.PressEsc()
				assert.False(t, d.Quitting)
				d.Press(tea.KeyCtrlQ)
				assert.True(t, d.Quitting)
			},
		},
		{
			name: "history toggle on a modified key keeps letters typeable",
			keys: config.KeyBindingsConfig{"toggle_history": {"ctrl+o"}},
			validate: func(t *testing.T, d *timerDriver) {
				d.Type("Hhannah")
				assert.Equal(t, "Hhannah", d.model().nameInput.Value())
				assert.False(t, d.model().historyVisible)

				d.Press(tea.KeyCtrlO)
				assert.True(t, d.model().historyVisible)

				d.PressEnter()
				assert.Equal(t, "Hhannah", d.model().Stopwatch().Session().SpeakerName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.keys.Validate(GetKeyRules()))

			d := newTimerDriver(t, ModelConfig{Keys: tt.keys})
			tt.validate(t, d)
		})
	}
}

func TestModel_ShadowingKeyBindingsAreRejected(t *testing.T) {
	for _, keys := range []config.KeyBindingsConfig{
		{"quit": {"s"}},
		{"toggle_history": {"h"}},
		{"reset": {"t"}},
	} {
		assert.Error(t, keys.Validate(GetKeyRules()), "%v", keys)
	}
}

func TestModel_ViewShowsTimerScreen(t *testing.T) {
	d := newTimerDriver(t, ModelConfig{})

	view := d.View()
	assert.Contains(t, view, "Toastmasters Timer")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "Start")
	assert.Contains(t, view, "Show History")
	assert.Contains(t, view, AttributionURL)
	assert.NotContains(t, view, "Hide Timer")

	d.startSpeaker("Ana")
	assert.Contains(t, d.View(), "Hide Timer")
}

func TestModel_ViewPaintsBandBackground(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	d := newTimerDriver(t, ModelConfig{})
	d.startSpeaker("Ana")
	d.tick(25)
	require.Equal(t, domain.ColorGreen, d.model().Stopwatch().Background())

	green := "48;2;76;175;80"
	checked := 0
	for _, line := range strings.Split(d.View(), "\n") {
		plain, unpainted := scanPaint(line, green)
		if strings.TrimSpace(plain) == "" || strings.Contains(plain, "Toastmasters Timer") {
			assert.Zero(t, unpainted, "unpainted cells in %q", plain)
			checked++
		}
	}
	assert.Greater(t, checked, 3)
}

// scanPaint strips SGR sequences from line and counts the visible cells
// drawn while the background sequence bg was not active.
func scanPaint(line, bg string) (string, int) {
	var plain strings.Builder
	painted := false
	unpainted := 0
	for i := 0; i < len(line); {
		if line[i] == '\x1b' && i+1 < len(line) && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && (line[j] < 0x40 || line[j] > 0x7e) {
				j++
			}
			if j < len(line) && line[j] == 'm' {
				switch params := line[i+2 : j]; {
				case strings.Contains(params, bg):
					painted = true
				case params == "" || params == "0":
					painted = false
				}
			}
			i = j + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		plain.WriteRune(r)
		if !painted {
			unpainted++
		}
		i += size
	}
	return plain.String(), unpainted
}
