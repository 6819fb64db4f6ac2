package logging

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/renato0307/speechtimer/internal/config"
)

// DefaultMaxLogFiles is the default number of log files kept in the log directory
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug logging.
var Logger = discard()

// Options selects where debug logs are written
type Options struct {
	Debug       bool
	File        string // Custom path; no rotation is done for it
	MaxLogFiles int    // 0 keeps every file
}

// Initialize sets up the logger based on the debug flag and configuration.
// It returns the path of the log file in use, or "" when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := Options{Debug: debug, File: debugFile, MaxLogFiles: maxLogFiles}.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = discard()
		return "", nil
	}

	runID := uuid.New().String()
	path, err := opts.path(runID)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("run_id", runID, "pid", os.Getpid())
	Logger.Info("Debug logging initialized", "log_file", path)

	return path, nil
}

// ForSession returns a logger whose records carry the timing session
func ForSession(id, speaker string) *slog.Logger {
	return Logger.With(slog.Group("session", "id", id, "speaker", speaker))
}

// LogDir returns $SPEECHTIMER_HOME/logs
func LogDir() string {
	return filepath.Join(config.GetHome(), "logs")
}

// withEnv applies SPEECHTIMER_DEBUG, SPEECHTIMER_DEBUG_FILE and
// SPEECHTIMER_MAX_LOG_FILES where the caller left the defaults
func (o Options) withEnv() Options {
	if os.Getenv("SPEECHTIMER_DEBUG") == "1" {
		o.Debug = true
	}
	if file := os.Getenv("SPEECHTIMER_DEBUG_FILE"); file != "" && o.File == "" {
		o.File = file
	}
	if raw := os.Getenv("SPEECHTIMER_MAX_LOG_FILES"); raw != "" && o.MaxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(raw); err == nil {
			o.MaxLogFiles = n
		}
	}
	return o
}

// path prepares the directory of the log file and returns its location.
// Files in LogDir are named after the run and pruned to MaxLogFiles.
func (o Options) path(runID string) (string, error) {
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.File, nil
	}

	dir := LogDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.MaxLogFiles > 0 {
		if err := pruneLogs(dir, o.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, runID+".log"), nil
}

// pruneLogs deletes the oldest .log files in dir so a new one fits under keep
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}

	excess := len(logs) - keep + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b fs.FileInfo) int {
		return cmp.Compare(a.ModTime().UnixNano(), b.ModTime().UnixNano())
	})

	for _, info := range logs[:excess] {
		path := filepath.Join(dir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}

	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
