// Package logging constructs the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger writing to the given file (and stderr when
// debug is set). An empty path logs to stderr only.
func New(path string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	outputs := []string{"stderr"}
	if path != "" {
		outputs = []string{path}
		if debug {
			outputs = append(outputs, "stderr")
		}
	}
	config.OutputPaths = outputs
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
