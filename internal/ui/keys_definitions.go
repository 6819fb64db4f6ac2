package ui

import (
	"sort"
	"sync"

	"github.com/renato0307/speechtimer/internal/config"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
	// Typing is set for bindings that stay live while the speaker name is edited.
	Typing bool
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Typing: true},
	{Name: "help", Defaults: []string{"f1"}, Help: "show keyboard shortcuts", Typing: true},
	{Name: "quit", Defaults: []string{"esc"}, Help: "exit application", Typing: true},

	// Timer keys
	{Name: "reset", Defaults: []string{"ctrl+r"}, Help: "reset without recording", Typing: true},
	{Name: "start", Defaults: []string{"enter"}, Help: "start timing the speaker", Typing: true},
	{Name: "stop", Defaults: []string{"s"}, Help: "stop and record in history"},
	{Name: "toggle_timer", Defaults: []string{"t"}, Help: "hide/show the timer"},

	// History keys
	{Name: "copy_history", Defaults: []string{"ctrl+y"}, Help: "copy history to clipboard", Typing: true},
	{Name: "history_next", Defaults: []string{"shift+tab"}, Help: "focus next history bucket", Typing: true},
	{Name: "history_scroll_down", Defaults: []string{"pgdown"}, Help: "scroll history bucket down", Typing: true},
	{Name: "history_scroll_up", Defaults: []string{"pgup"}, Help: "scroll history bucket up", Typing: true},
	{Name: "toggle_history", Defaults: []string{"tab"}, Help: "hide/show history", Typing: true},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetKeyRules returns the rules custom key bindings are validated against.
func GetKeyRules() config.KeyRules {
	rules := config.KeyRules{Defaults: GetDefaultKeyBindings()}
	for _, def := range AllKeyDefinitions {
		if def.Typing {
			rules.Typing = append(rules.Typing, def.Name)
		}
	}
	return rules
}

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
