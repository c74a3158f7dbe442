// internal/logging/logger.go
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents logging severity
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes levelled lines to a file that rotates daily.
// The terminal is owned by the TUI, so nothing goes to stdout.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	logger *log.Logger
	dir    string
	date   string
	now    func() time.Time
}

var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// Init initializes the global logger in dir
func Init(dir string) error {
	l, err := New(dir)
	if err != nil {
		return err
	}

	globalMu.Lock()
	old := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// New creates a logger writing to dir/idswatch-YYYY-MM-DD.log
func New(dir string) (*Logger, error) {
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{dir: dir, now: time.Now}
	if err := l.rotateIfNeeded(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the file currently written to
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return filepath.Join(l.dir, fmt.Sprintf("idswatch-%s.log", l.date))
}

func (l *Logger) rotateIfNeeded() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format("2006-01-02")
	if l.date == today && l.file != nil {
		return nil
	}

	if l.file != nil {
		l.file.Close()
	}

	path := filepath.Join(l.dir, fmt.Sprintf("idswatch-%s.log", today))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.logger = log.New(file, "", 0)
	l.date = today
	return nil
}

// Log writes one entry
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	if l == nil {
		log.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
		return
	}

	_ = l.rotateIfNeeded()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logger == nil {
		return
	}
	timestamp := l.now().Format("2006-01-02 15:04:05")
	l.logger.Printf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
}

// Close closes the underlying file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = nil
	return err
}

func current() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalLogger
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	current().Log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	current().Log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	current().Log(LevelError, format, args...)
}

// Close closes the global logger
func Close() {
	globalMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalMu.Unlock()

	if l != nil {
		l.Close()
	}
}
