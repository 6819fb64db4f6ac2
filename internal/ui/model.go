package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/speechtimer/internal/config"
	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/logging"
	"github.com/renato0307/speechtimer/internal/ports"
	"github.com/renato0307/speechtimer/internal/services"
	"github.com/renato0307/speechtimer/internal/theme"
)

// DefaultTickInterval is the real time between two ticks of the stopwatch
const DefaultTickInterval = time.Second

// bellFrame is how long a frame carrying the terminal bell stays rendered.
// It outlasts the renderer's frame interval so the bell is flushed once.
const bellFrame = 100 * time.Millisecond

// AttributionURL is printed in the footer of the timer screen
const AttributionURL = "https://github.com/Engineered0"

type uiState int

const (
	stateTimer uiState = iota
	stateAlert
	stateHelp
)

// ModelConfig holds everything needed to build the timer model
type ModelConfig struct {
	Chime           *services.ChimeService // Nil or disabled means no band chime
	DevMode         bool                   // Shows version info in dialogs
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	TickInterval    time.Duration // Zero means DefaultTickInterval
}

// Model is the speech timer screen
type Model struct {
	alert          *Dialog                // Blocking alert (blank speaker name)
	bell           bool                   // Next frame rings the terminal bell
	chime          *services.ChimeService // Band change chime
	devMode        bool
	errorManager   *ErrorManager // Error display and auto-clearing
	height         int
	help           help.Model // Bottom bar key hints
	helpScreen     *Dialog    // Help screen dialog
	history        *HistoryPanel
	historyVisible bool
	keys           KeyMap
	nameInput      textinput.Model
	state          uiState
	stopwatch      *domain.Stopwatch
	tickInterval   time.Duration
	timerVisible   bool
	width          int
}

// NewModel creates the timer screen in its idle state
func NewModel(cfg ModelConfig) *Model {
	keys := NewKeyMap(cfg.Keys)
	keys.SetRunning(false)
	keys.SetHistoryVisible(false)

	nameInput := textinput.New()
	nameInput.Placeholder = "Enter speaker's name"
	nameInput.Prompt = ""
	nameInput.Focus()

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	return &Model{
		chime:        cfg.Chime,
		devMode:      cfg.DevMode,
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		help:         help.New(),
		history:      NewHistoryPanel(),
		keys:         keys,
		nameInput:    nameInput,
		state:        stateTimer,
		stopwatch:    domain.NewStopwatch(),
		tickInterval: tickInterval,
		timerVisible: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that apply whatever screen is in front
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.handleTick(msg)

	case chimeFailedMsg:
		if errors.Is(msg.err, ports.ErrNoSoundPlayer) {
			logging.Logger.Debug("No sound player, ringing terminal bell", "band", msg.band.String())
			m.bell = true
			return m, tea.Tick(bellFrame, func(time.Time) tea.Msg { return bellRungMsg{} })
		}
		logging.Logger.Warn("Band chime failed", "band", msg.band.String(), "error", msg.err)
		return m, m.errorManager.Show(fmt.Errorf("failed to play %s chime: %w", msg.band, msg.err))

	case bellRungMsg:
		m.bell = false
		return m, nil

	case historyCopiedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to copy history", "error", msg.err)
			return m, m.errorManager.Show(fmt.Errorf("failed to copy history: %w", msg.err))
		}
		logging.Logger.Info("History copied to clipboard", "entries", msg.entries)
		return m, nil

	case clearErrorMsg:
		m.errorManager.Clear(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.SetWidth(msg.Width)
		if m.helpScreen != nil {
			_, cmd := m.helpScreen.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, m.quit()
		}
	}

	switch m.state {
	case stateAlert:
		return m.updateAlert(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateTimer(msg)
}

func (m *Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Keyboard shortcuts", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Timer.Start):
		return m, m.Start()

	case key.Matches(keyMsg, m.keys.Timer.Stop):
		return m, m.Stop()

	case key.Matches(keyMsg, m.keys.Timer.Reset):
		return m, m.Reset()

	case key.Matches(keyMsg, m.keys.Timer.ToggleTimer):
		m.ToggleTimerVisibility()
		return m, nil

	case key.Matches(keyMsg, m.keys.History.Toggle):
		m.ToggleHistoryVisibility()
		return m, nil

	case key.Matches(keyMsg, m.keys.History.Copy):
		return m, m.copyHistoryCmd()

	case key.Matches(keyMsg, m.keys.History.NextBucket):
		m.history.FocusNext()
		return m, nil

	case key.Matches(keyMsg, m.keys.History.ScrollUp):
		m.history.ScrollUp()
		return m, nil

	case key.Matches(keyMsg, m.keys.History.ScrollDown):
		m.history.ScrollDown()
		return m, nil
	}

	// The name field is read-only while running
	if m.stopwatch.IsRunning() {
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(keyMsg)
	m.stopwatch.SetSpeakerName(m.nameInput.Value())
	return m, cmd
}

func (m *Model) updateAlert(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.alert.Update(msg)
	m.alert = updated.(*Dialog)

	if content, ok := m.alert.Content().(*Alert); ok && content.Completed {
		m.alert = nil
		m.state = stateTimer
		return m, m.nameInput.Focus()
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateTimer
		return m, nil
	}
	return m, cmd
}

// Start begins timing the speaker in the name field. A blank name opens the
// blocking alert and changes nothing else.
func (m *Model) Start() tea.Cmd {
	m.stopwatch.SetSpeakerName(m.nameInput.Value())

	gen, err := m.stopwatch.Start()
	if errors.Is(err, domain.ErrBlankSpeakerName) {
		logging.Logger.Info("Start rejected", "reason", err)
		m.alert = NewDialog("Speaker name required", NewAlert("Please enter a speaker name"), m.devMode)
		m.state = stateAlert
		m.nameInput.Blur()
		return m.alert.Init()
	}
	if err != nil {
		logging.Logger.Debug("Start ignored", "reason", err)
		return nil
	}

	session := m.stopwatch.Session()
	logging.ForSession(session.ID, session.SpeakerName).Info("Session started")

	m.nameInput.Blur()
	m.keys.SetRunning(true)
	return m.scheduleTick(gen)
}

// Stop records the running session in the history and resets the screen
func (m *Model) Stop() tea.Cmd {
	session := m.stopwatch.Session()
	entry, err := m.stopwatch.Stop()
	if err != nil {
		logging.Logger.Debug("Stop ignored", "reason", err)
		return nil
	}

	logging.ForSession(session.ID, session.SpeakerName).Info("Session stopped",
		"duration", entry.Duration,
		"color", entry.Color,
		"band", domain.BandFor(entry.Duration).String())

	m.history.Refresh(m.stopwatch.History())
	return m.resetScreen()
}

// Reset discards the current session without recording it
func (m *Model) Reset() tea.Cmd {
	session := m.stopwatch.Session()
	m.stopwatch.Reset()

	if session.IsRunning {
		logging.ForSession(session.ID, session.SpeakerName).Info("Session discarded",
			"elapsed", session.ElapsedSeconds)
	}

	return m.resetScreen()
}

// ToggleTimerVisibility hides or shows the elapsed time. Timing is unaffected.
func (m *Model) ToggleTimerVisibility() {
	m.timerVisible = !m.timerVisible
}

// ToggleHistoryVisibility hides or shows the history panel
func (m *Model) ToggleHistoryVisibility() {
	m.historyVisible = !m.historyVisible
	m.keys.SetHistoryVisible(m.historyVisible)
	if m.historyVisible {
		m.history.Refresh(m.stopwatch.History())
	}
}

// Stopwatch exposes the underlying stopwatch
func (m *Model) Stopwatch() *domain.Stopwatch {
	return m.stopwatch
}

// resetScreen puts the widgets back to their idle defaults
func (m *Model) resetScreen() tea.Cmd {
	m.timerVisible = true
	m.keys.SetRunning(false)
	m.nameInput.SetValue("")
	return m.nameInput.Focus()
}

// quit releases the tick before leaving so no tick outlives the screen
func (m *Model) quit() tea.Cmd {
	if m.stopwatch.IsRunning() {
		session := m.stopwatch.Session()
		logging.ForSession(session.ID, session.SpeakerName).Info("Quitting with a running session",
			"elapsed", session.ElapsedSeconds)
	}
	m.stopwatch.Reset()
	return tea.Quit
}

// scheduleTick issues the next tick for a generation
func (m *Model) scheduleTick(gen int) tea.Cmd {
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

// handleTick applies a tick and schedules the next one. A tick from a
// released generation is dropped, which also ends its chain.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	previous := m.stopwatch.Session().ElapsedSeconds
	if !m.stopwatch.Tick(msg.generation) {
		return nil
	}

	cmds := []tea.Cmd{m.scheduleTick(msg.generation)}

	if m.chime.Enabled() {
		if band, crossed := services.CrossedBand(previous, m.stopwatch.Session().ElapsedSeconds); crossed {
			cmds = append(cmds, m.chimeCmd(band))
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) chimeCmd(band domain.Band) tea.Cmd {
	chime := m.chime
	return func() tea.Msg {
		if err := chime.Chime(band); err != nil {
			return chimeFailedMsg{band: band, err: err}
		}
		return nil
	}
}

// View renders the current screen. The terminal bell travels as a BEL
// prefix of a frame so it goes through the program's renderer.
func (m *Model) View() string {
	if m.bell {
		return "\a" + m.render()
	}
	return m.render()
}

func (m *Model) render() string {
	switch m.state {
	case stateAlert:
		return m.alert.View()
	case stateHelp:
		return m.helpScreen.View()
	}

	bg := lipgloss.Color(m.stopwatch.Background())
	content := m.renderTimerScreen(bg)
	if m.width == 0 || m.height == 0 {
		return content
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(bg))
}

func (m *Model) renderTimerScreen(bg lipgloss.Color) string {
	running := m.stopwatch.IsRunning()
	var sections []string

	sections = append(sections, theme.OnBand(theme.ScreenTitleStyle, bg).Render("Toastmasters Timer"))

	if m.timerVisible {
		sections = append(sections, theme.OnBand(theme.ClockStyle, bg).Render(domain.FormatDuration(m.stopwatch.Session().ElapsedSeconds)))
	} else {
		sections = append(sections, theme.OnBand(theme.ClockHiddenStyle, bg).Render("timer hidden"))
	}

	inputStyle := theme.SpeakerInputStyle
	if running {
		inputStyle = theme.SpeakerInputLockedStyle
	}
	sections = append(sections,
		theme.OnBand(theme.SpeakerLabelStyle, bg).Render("Speaker"),
		inputStyle.BorderBackground(bg).Render(m.nameInput.View()))

	buttons := []string{
		renderButton("Start", m.keys.Timer.Start, theme.ColorButtonStart, bg),
		renderButton("Stop", m.keys.Timer.Stop, theme.ColorButtonStop, bg),
		renderButton("Reset", m.keys.Timer.Reset, theme.ColorButtonReset, bg),
	}
	if running {
		label := "Hide Timer"
		if !m.timerVisible {
			label = "Show Timer"
		}
		buttons = append(buttons, renderButton(label, m.keys.Timer.ToggleTimer, theme.ColorButtonToggle, bg))
	}
	sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	historyLabel := "Show History"
	if m.historyVisible {
		historyLabel = "Hide History"
	}
	sections = append(sections, "", renderButton(historyLabel, m.keys.History.Toggle, theme.ColorButtonHistory, bg))

	if m.historyVisible {
		sections = append(sections, "", m.history.View())
	}

	if m.errorManager.HasError() {
		width := m.width
		if width == 0 {
			width = defaultPanelWidth
		}
		sections = append(sections, "", theme.OnBand(theme.ErrorStyle, bg).Render(formatErrorForDisplay(m.errorManager.Err(), width-4)))
	}

	helpBar := m.help
	helpBar.Styles.ShortKey = helpBar.Styles.ShortKey.Background(bg)
	helpBar.Styles.ShortDesc = helpBar.Styles.ShortDesc.Background(bg)
	helpBar.Styles.ShortSeparator = helpBar.Styles.ShortSeparator.Background(bg)
	helpBar.Styles.Ellipsis = helpBar.Styles.Ellipsis.Background(bg)

	sections = append(sections,
		"",
		helpBar.View(m.keys),
		theme.OnBand(theme.AttributionStyle, bg).Render(AttributionURL))

	return paintBlock(sections, bg)
}

// paintBlock stacks sections centred on one block, padding every line with
// the band colour instead of the terminal default
func paintBlock(sections []string, bg lipgloss.Color) string {
	width := 0
	for _, section := range sections {
		width = max(width, lipgloss.Width(section))
	}

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

// renderButton draws a control with its key hint, greyed out when the
// binding is disabled
func renderButton(label string, binding key.Binding, color, bg lipgloss.Color) string {
	text := label
	if hint := binding.Help().Key; hint != "" {
		text = fmt.Sprintf("%s [%s]", label, strings.ToLower(hint))
	}
	if !binding.Enabled() {
		return theme.ButtonDisabledStyle.MarginBackground(bg).Render(text)
	}
	return theme.ButtonStyle(color).MarginBackground(bg).Render(text)
}
