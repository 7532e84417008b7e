// Package logging provides a small leveled logger over the standard log package.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders log severities.
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

var (
	mu     sync.RWMutex
	logger = log.New(os.Stderr, "", log.LstdFlags)
	level  = ParseLevel(os.Getenv("ROGUECAVE_LOG_LEVEL"))
)

// SetLevel sets the minimum level written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

// Trace logs a TRACE message.
func Trace(format string, args ...interface{}) { logMessage(TRACE, format, args...) }

// Debug logs a DEBUG message.
func Debug(format string, args ...interface{}) { logMessage(DEBUG, format, args...) }

// Info logs an INFO message.
func Info(format string, args ...interface{}) { logMessage(INFO, format, args...) }

// Warn logs a WARN message.
func Warn(format string, args ...interface{}) { logMessage(WARN, format, args...) }

// Error logs an ERROR message.
func Error(format string, args ...interface{}) { logMessage(ERROR, format, args...) }

func logMessage(l Level, format string, args ...interface{}) {
	if !Enabled(l) {
		return
	}
	logger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}
