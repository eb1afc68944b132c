package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a structured logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "bounce",
		ReportTimestamp: true,
	}), nil
}
