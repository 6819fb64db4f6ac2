package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode"
	"unicode/utf8"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start", "reset"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// KeyRules describes the bindings that overrides are validated against.
type KeyRules struct {
	// Defaults maps every binding name to its default keys.
	Defaults map[string][]string
	// Typing names the bindings that stay live while the speaker name is edited.
	Typing []string
}

// Validate checks for configuration errors in key bindings.
// Overrides are merged over rules.Defaults and the effective map is checked,
// so an override cannot shadow a default it sits next to.
func (k KeyBindingsConfig) Validate(rules KeyRules) error {
	for name, keys := range k {
		if _, ok := rules.Defaults[name]; !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
		}
	}

	typing := make(map[string]bool, len(rules.Typing))
	for _, name := range rules.Typing {
		typing[name] = true
	}

	names := make([]string, 0, len(rules.Defaults))
	for name := range rules.Defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		keys := []string(k[name])
		if len(keys) == 0 {
			keys = rules.Defaults[name]
		}

		for _, key := range keys {
			if typing[name] && isPrintableKey(key) {
				return fmt.Errorf("key '%s' for '%s' would block typing the speaker name", key, name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// isPrintableKey reports whether key is a bare character a text input would consume.
func isPrintableKey(key string) bool {
	if key == "space" {
		return true
	}
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r)
}

// DefaultErrorClearDelay is the default number of seconds before errors auto-clear
const DefaultErrorClearDelay = 10

// Settings represents the structure of $SPEECHTIMER_HOME/settings.json.
// Timer state and history are never written here.
type Settings struct {
	Chime           *bool             `json:"chime,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from $SPEECHTIMER_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SPEECHTIMER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
