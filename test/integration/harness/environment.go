package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own SPEECHTIMER_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SPEECHTIMER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SPEECHTIMER_* variables and sets:
//   - SPEECHTIMER_HOME to the temp directory
//   - SPEECHTIMER_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SPEECHTIMER_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SPEECHTIMER_HOME="+e.Home,
		"SPEECHTIMER_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path of the settings file of this environment.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes raw settings.json content for this environment.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
