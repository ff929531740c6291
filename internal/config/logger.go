package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the process logger at the configured level.
func (s Settings) NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           s.LogLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
