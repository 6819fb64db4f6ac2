package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Timer") + "\n"
	content += renderBinding(keys.Timer.Start)
	content += renderBinding(keys.Timer.Stop)
	content += renderBinding(keys.Timer.Reset)
	content += renderBinding(keys.Timer.ToggleTimer)

	content += "\n" + theme.HelpGroupStyle.Render("History") + "\n"
	content += renderBinding(keys.History.Toggle)
	content += renderBinding(keys.History.NextBucket)
	content += renderBinding(keys.History.ScrollUp)
	content += renderBinding(keys.History.ScrollDown)
	content += renderBinding(keys.History.Copy)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help)
	content += renderBinding(keys.Application.Quit)
	content += renderBinding(keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Background colours (read-only)") + "\n"
	content += renderShortcut("white", "under 20 seconds")
	content += renderShortcut("green", "20 seconds and up")
	content += renderShortcut("yellow", "30 seconds and up")
	content += renderShortcut("red", "40 seconds and up")

	content += "\n" + theme.HelpGroupStyle.Render("History buckets (read-only)") + "\n"
	for _, band := range domain.AllBands {
		content += renderShortcut(band.String(), band.Title())
	}

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := max(msg.Height-6, 5)

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc or " + h.keys.Application.Help.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
