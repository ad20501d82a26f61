package logging

import (
	"github.com/sirupsen/logrus"
)

type Classification string

const (
	Warn  Classification = "WARN"
	Info  Classification = "INFO"
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

func (n Noop) Logf(Classification, string, ...interface{}) {}

// Logrus is a Logger implementation that delegates to a logrus logger or
// entry, mapping each classification to the logrus level of the same name.
// Unknown classifications are logged at info level.
type Logrus struct {
	Logger logrus.FieldLogger
}

// Logf logs the given classification and message to the underlying logger.
func (l Logrus) Logf(classification Classification, format string, v ...interface{}) {
	switch classification {
	case Warn:
		l.Logger.Warnf(format, v...)
	case Debug:
		l.Logger.Debugf(format, v...)
	default:
		l.Logger.Infof(format, v...)
	}
}

// NewLogrus returns a new Logrus logger writing through l.
func NewLogrus(l logrus.FieldLogger) *Logrus {
	return &Logrus{Logger: l}
}
