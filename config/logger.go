package config

import (
	"io"

	"github.com/phuslu/log"
)

// NewLogger returns a logger writing to w at the configured level, as json
// lines or human readable console lines.
func (l LoggingConfig) NewLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if l.Level != "" {
		level = log.ParseLevel(l.Level)
	}
	logger := &log.Logger{Level: level}
	switch l.Format {
	case "json":
		logger.Writer = &log.IOWriter{Writer: w}
	default:
		logger.Writer = &log.ConsoleWriter{Writer: w}
	}
	return logger
}
