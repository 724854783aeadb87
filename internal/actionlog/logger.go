// Package actionlog writes an append-only log of positioning actions,
// one line per action, for debugging placement rules and tray events.
package actionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel defines the logging verbosity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLogLevel maps a config level string to a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ActionType represents the type of action being logged.
type ActionType string

const (
	ActionMove       ActionType = "MOVE"
	ActionMoveFailed ActionType = "MOVE-FAILED"
	ActionTrayUpdate ActionType = "TRAY-UPDATE"
	ActionReload     ActionType = "RELOAD"
)

// actionLevel returns the log level for an action type.
func actionLevel(action ActionType) LogLevel {
	switch action {
	case ActionTrayUpdate:
		return LevelDebug
	case ActionMoveFailed:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// LogConfig holds configuration for the action logger.
type LogConfig struct {
	Enabled   bool
	Level     LogLevel
	FilePath  string
	MaxSizeMB int
}

// Logger handles action logging with size-based rotation. A nil
// Logger is valid and discards everything.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	config      LogConfig
	currentSize int64
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LogConfig) (*Logger, error) {
	if !cfg.Enabled {
		return &Logger{config: cfg}, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
	}

	size := int64(0)
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	return &Logger{
		file:        f,
		config:      cfg,
		currentSize: size,
	}, nil
}

// Log writes a single action entry. Details keys are emitted in sorted
// order so log lines are stable and diffable.
func (l *Logger) Log(action ActionType, details map[string]interface{}) {
	if l == nil || !l.config.Enabled || l.file == nil {
		return
	}
	if actionLevel(action) < l.config.Level {
		return
	}

	line := formatLine(time.Now().UTC(), action, details)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.rotateIfNeeded(int64(len(line)))

	n, err := l.file.WriteString(line)
	if err == nil {
		l.currentSize += int64(n)
	}
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func formatLine(ts time.Time, action ActionType, details map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(ts.Format(time.RFC3339))
	sb.WriteString(" ")
	sb.WriteString(string(action))

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(formatValue(details[k]))
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " =\"") {
			quoted, _ := json.Marshal(val)
			return string(quoted)
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// rotateIfNeeded renames the file to .1 when the next write would
// exceed the size limit. One rotated file is kept.
func (l *Logger) rotateIfNeeded(incoming int64) {
	maxBytes := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxBytes <= 0 || l.currentSize+incoming <= maxBytes {
		return
	}

	l.file.Close()
	os.Rename(l.config.FilePath, l.config.FilePath+".1")

	f, err := os.OpenFile(l.config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		l.file = nil
		return
	}
	l.file = f
	l.currentSize = 0
}
