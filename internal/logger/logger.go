// Package logger holds the process-wide structured logger of gridview.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the process logger. It discards everything until Init enables
// file logging.
var L = discard()

const (
	logPrefix     = "gridview-"
	logSuffix     = ".log"
	dayLayout     = "2006-01-02"
	retentionDays = 14
)

// Options configures Init.
type Options struct {
	Enabled bool       // false discards all records
	LogDir  string     // default: $XDG_STATE_HOME/gridview or ~/.local/state/gridview
	Level   slog.Level // minimum level written
}

var file *os.File

// Init points L at a JSON handler writing to the log file of the day, or
// at a discarding handler when logging is disabled. A file opened by an
// earlier Init is closed.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		var err error
		if dir, err = defaultDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	cleanOldLogs(dir, now)
	f, err := openDay(dir, now)
	if err != nil {
		return err
	}
	file = f
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close flushes and closes the log file, leaving L discarding.
func Close() {
	L = discard()
	if file != nil {
		file.Close()
		file = nil
	}
}

// ParseLevel maps a config level name to a slog level. Unknown names
// select info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func logPath(dir string, day time.Time) string {
	return filepath.Join(dir, logPrefix+day.Format(dayLayout)+logSuffix)
}

func openDay(dir string, day time.Time) (*os.File, error) {
	return os.OpenFile(logPath(dir, day), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func defaultDir() (string, error) {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, "gridview"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "gridview"), nil
}

// cleanOldLogs removes gridview log files dated before the retention window.
// Files whose names do not carry a date are kept.
func cleanOldLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		day, ok := strings.CutPrefix(e.Name(), logPrefix)
		if !ok {
			continue
		}
		day, ok = strings.CutSuffix(day, logSuffix)
		if !ok {
			continue
		}
		if t, err := time.Parse(dayLayout, day); err == nil && t.Before(cutoff) {
			os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
