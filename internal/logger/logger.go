package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the defaults this tool wants: plain text on
// stderr, no timestamps. Diagnostics go through here; the live progress line
// writes raw to stderr so the two do not fight over formatting.
type Logger struct {
	*logrus.Logger
}

// New creates a logger writing to stderr.
func New() *Logger {
	return NewWriter(os.Stderr)
}

// NewWriter creates a logger that writes to the provided writer.
func NewWriter(w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &Logger{Logger: l}
}
