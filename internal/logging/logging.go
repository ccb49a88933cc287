package logging

import (
	"cmp"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages
var Logger *slog.Logger

// DefaultMaxLogFiles is the rotation limit when none is configured
const DefaultMaxLogFiles = 1000

// Environment variables a child process inherits its log settings from
const (
	EnvDebug       = "SHOWKEY_DEBUG"
	EnvDebugFile   = "SHOWKEY_DEBUG_FILE"
	EnvMaxLogFiles = "SHOWKEY_MAX_LOG_FILES"
)

func init() {
	// Silent until Initialize runs, so tests and library callers log nowhere
	Logger = discardLogger()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize points Logger at a JSON log file when debugging is on.
// Without a custom file each run gets a fresh <uuid>.log in the state
// directory and the oldest files beyond maxLogFiles are removed.
// It returns the log file path, or "" when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	inherited := os.Getenv(EnvDebug) == "1"
	debug = debug || inherited
	if debugFile == "" {
		debugFile = os.Getenv(EnvDebugFile)
	}
	if maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv(EnvMaxLogFiles)); err == nil {
			maxLogFiles = n
		}
	}

	if !debug && debugFile == "" {
		Logger = discardLogger()
		return "", nil
	}

	path := debugFile
	if path == "" {
		dir, err := logDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if maxLogFiles > 0 {
			if err := rotateLogs(dir, maxLogFiles); err != nil {
				// rotation problems never block logging
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(dir, uuid.NewString()+".log")
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if !inherited {
		Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

// rotateLogs deletes the oldest .log files so that, with the file about to
// be created, at most keep remain
func rotateLogs(dir string, keep int) error {
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

// logDir is $XDG_STATE_HOME/showkey on Linux, with the platform's usual
// log location elsewhere
func logDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "showkey"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, "showkey", "logs"), nil
	default:
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			base = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(base, "showkey"), nil
	}
}
