package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/speechtimer/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// TimerKeys defines key bindings for the stopwatch controls
type TimerKeys struct {
	Reset       key.Binding
	Start       key.Binding
	Stop        key.Binding
	ToggleTimer key.Binding
}

// HistoryKeys defines key bindings for the history panel
type HistoryKeys struct {
	Copy       key.Binding
	NextBucket key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Toggle     key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	History     HistoryKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		History: HistoryKeys{
			Copy:       buildBinding("copy_history", defaults, customKeys),
			NextBucket: buildBinding("history_next", defaults, customKeys),
			ScrollDown: buildBinding("history_scroll_down", defaults, customKeys),
			ScrollUp:   buildBinding("history_scroll_up", defaults, customKeys),
			Toggle:     buildBinding("toggle_history", defaults, customKeys),
		},
		Timer: TimerKeys{
			Reset:       buildBinding("reset", defaults, customKeys),
			Start:       buildBinding("start", defaults, customKeys),
			Stop:        buildBinding("stop", defaults, customKeys),
			ToggleTimer: buildBinding("toggle_timer", defaults, customKeys),
		},
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// SetRunning enables the bindings that only make sense in the given state.
// Start is unavailable while running, stop and the timer toggle only while running.
func (k *KeyMap) SetRunning(running bool) {
	k.Timer.Start.SetEnabled(!running)
	k.Timer.Stop.SetEnabled(running)
	k.Timer.ToggleTimer.SetEnabled(running)
}

// SetHistoryVisible enables the bucket navigation keys when the panel is shown
func (k *KeyMap) SetHistoryVisible(visible bool) {
	k.History.NextBucket.SetEnabled(visible)
	k.History.ScrollDown.SetEnabled(visible)
	k.History.ScrollUp.SetEnabled(visible)
}

// ShortHelp implements help.KeyMap for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.Start,
		k.Timer.Stop,
		k.Timer.Reset,
		k.Timer.ToggleTimer,
		k.History.Toggle,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer.Start, k.Timer.Stop, k.Timer.Reset, k.Timer.ToggleTimer},
		{k.History.Toggle, k.History.NextBucket, k.History.ScrollUp, k.History.ScrollDown, k.History.Copy},
		{k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
