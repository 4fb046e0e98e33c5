// Package logging builds the diagnostic logger. Progress meant for the user
// goes through package report; this logger carries the decisions behind it
// (which files were skipped and why) for anyone running with a lower level.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
