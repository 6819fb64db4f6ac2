package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/speechtimer/internal/config"
	"github.com/renato0307/speechtimer/internal/logging"
	"github.com/renato0307/speechtimer/internal/ui"
)

// ErrNotATerminal is returned by run when stdin is not an interactive terminal
var ErrNotATerminal = errors.New("speechtimer needs an interactive terminal")

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run         RunCmd         `cmd:"" help:"Start the speech timer (default)" default:"1"`
	Chime       ChimeCmd       `cmd:"chime" help:"Play the band chime to test the sound setup"`
	Settings    SettingsCmd    `cmd:"settings" help:"Manage settings (meta, keys)"`
	VersionInfo VersionInfoCmd `cmd:"version" help:"Show build information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SPEECHTIMER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SPEECHTIMER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Debug("Logging initialized", "file", logFilePath)
	}

	// Container is built after logging so its constructors can log
	c.Container = NewContainer(c.chimeEnabled())

	return nil
}

// chimeEnabled resolves the chime setting: SPEECHTIMER_CHIME > settings.json > off.
// The run --chime flag is applied on top of this in RunCmd.
func (c *CLI) chimeEnabled() bool {
	if v, ok := os.LookupEnv("SPEECHTIMER_CHIME"); ok {
		return v == "1" || v == "true"
	}
	return c.settings != nil && c.settings.Chime != nil && *c.settings.Chime
}

// RunCmd starts the speech timer TUI
type RunCmd struct {
	Chime           bool `help:"Play a chime each time the speaker enters a new band"`
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	NoAltScreen     bool `help:"Render inline instead of using the alternate screen buffer"`

	isTerminal func() bool `kong:"-"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if !r.interactive() {
		return ErrNotATerminal
	}

	if cli.settings != nil {
		if r.ErrorClearDelay == config.DefaultErrorClearDelay {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
	}

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetKeyRules()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	chime := cli.Container.ChimeService
	if r.Chime && !chime.Enabled() {
		chime = cli.Container.WithChime().ChimeService
	}

	logging.Logger.Info("Starting speech timer",
		"chime", chime.Enabled(),
		"error_clear_delay", r.ErrorClearDelay)

	opts := []tea.ProgramOption{}
	if !r.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(
		ui.NewModel(ui.ModelConfig{
			Chime:           chime,
			DevMode:         r.Dev,
			ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
			Keys:            keysConfig,
		}),
		opts...,
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Speech timer exited normally")
	return nil
}

func (r *RunCmd) interactive() bool {
	if r.isTerminal != nil {
		return r.isTerminal()
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
