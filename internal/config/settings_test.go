package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected KeyBindingValue
	}{
		{"single string", `"s"`, KeyBindingValue{"s"}},
		{"array", `["up", "k"]`, KeyBindingValue{"up", "k"}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &kv))
			assert.Equal(t, tt.expected, kv)
		})
	}
}

func TestKeyBindingValue_MarshalJSON_SingleAsString(t *testing.T) {
	data, err := json.Marshal(KeyBindingValue{"s"})
	require.NoError(t, err)
	assert.Equal(t, `"s"`, string(data))

	data, err = json.Marshal(KeyBindingValue{"s", "space"})
	require.NoError(t, err)
	assert.Equal(t, `["s","space"]`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	rules := KeyRules{
		Defaults: map[string][]string{
			"quit":           {"esc"},
			"reset":          {"ctrl+r"},
			"start":          {"enter"},
			"stop":           {"s"},
			"toggle_history": {"tab"},
		},
		Typing: []string{"quit", "reset", "start", "toggle_history"},
	}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid override", KeyBindingsConfig{"stop": {"x"}}, ""},
		{"empty list uses default", KeyBindingsConfig{"stop": {}}, ""},
		{"printable keys on running-only binding", KeyBindingsConfig{"stop": {"x", "space"}}, ""},
		{"unknown name", KeyBindingsConfig{"pause": {"p"}}, "unknown key binding 'pause'"},
		{"empty value", KeyBindingsConfig{"stop": {""}}, "key binding for 'stop' contains empty value"},
		{"override shadows default", KeyBindingsConfig{"reset": {"ctrl+x", "esc"}}, "key 'esc' is assigned to both 'quit' and 'reset'"},
		{"default freed by override", KeyBindingsConfig{"stop": {"x"}, "reset": {"ctrl+s"}, "quit": {"ctrl+q", "esc"}}, ""},
		{"letter on typing binding", KeyBindingsConfig{"toggle_history": {"h"}}, "key 'h' for 'toggle_history' would block typing the speaker name"},
		{"space on typing binding", KeyBindingsConfig{"start": {"space"}}, "key 'space' for 'start' would block typing the speaker name"},
		{"quit on stop key", KeyBindingsConfig{"quit": {"s"}}, "key 's' for 'quit' would block typing the speaker name"},
		{"modified key on typing binding", KeyBindingsConfig{"toggle_history": {"ctrl+h"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(rules)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestKeyBindingsConfig_ValidateDuplicate(t *testing.T) {
	rules := KeyRules{Defaults: map[string][]string{"start": {"enter"}, "stop": {"s"}}}

	err := KeyBindingsConfig{"start": {"x"}, "stop": {"x"}}.Validate(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key 'x' is assigned to both")

	err = KeyBindingsConfig{"start": {"s"}}.Validate(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key 's' is assigned to both 'start' and 'stop'")
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("SPEECHTIMER_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SPEECHTIMER_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveThenLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("SPEECHTIMER_HOME", home)

	chime := true
	delay := 3
	require.NoError(t, SaveSettings(&Settings{
		Chime:           &chime,
		ErrorClearDelay: &delay,
		Keys:            KeyBindingsConfig{"stop": {"x", "space"}},
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)

	require.NotNil(t, settings.Chime)
	assert.True(t, *settings.Chime)
	require.NotNil(t, settings.ErrorClearDelay)
	assert.Equal(t, 3, *settings.ErrorClearDelay)
	assert.Equal(t, KeyBindingValue{"x", "space"}, settings.Keys["stop"])
	assert.Nil(t, settings.Debug)
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{"chime", "debug", "error_clear_delay", "keys", "max_log_files"} {
		assert.Contains(t, example, name)
	}
	assert.Equal(t, DefaultErrorClearDelay, example["error_clear_delay"])
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "timers"), ExpandPath("~/timers"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
