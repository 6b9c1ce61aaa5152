// Package log provides the logging interface used across the module,
// backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text at debug level to stderr.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithOutput is New, but writes to w at the given level.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}
