// Package debug writes diagnostic lines to a log file while the TUI owns the
// terminal. Logging is off unless Setup is called; every call is then a no-op.
package debug

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

const EnvVar = "DRAGBOARD_DEBUG"

const defaultLogFile = "dragboard.log"

var logger *log.Logger

// Setup opens path (or dragboard.log when path is "1") for appending and
// enables logging. The returned closer must be closed on exit.
func Setup(path string) (io.Closer, error) {
	if path == "" || path == "1" || path == "true" {
		path = defaultLogFile
	}
	l := log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)
	f, err := tea.LogToFileWith(path, "dragboard", l)
	if err != nil {
		return nil, err
	}
	logger = l
	return closerFunc(func() error {
		logger = nil
		return f.Close()
	}), nil
}

// SetOutput routes log lines to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	if w == nil {
		logger = nil
		return
	}
	logger = log.New(w, "dragboard ", 0)
}

func Enabled() bool {
	return logger != nil
}

// Log writes a printf-style line if logging is enabled.
func Log(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
