// Package tracelog configures the structured logger cmd/gsv uses. The
// gsv package itself is pure and synchronous (spec.md §5) and never
// logs; logging lives one layer up, the way the teacher-adjacent
// codenerd's cmd/nerd wires go.uber.org/zap at the command layer rather
// than inside its logic kernel.
package tracelog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger for cmd/gsv: a human-readable console encoder
// at debug level when verbose is set, a JSON production encoder
// otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return config.Build()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return config.Build()
}

// Invocation logs one structured entry describing a completed CLI
// operation: the operation name (for example "eval", "diagram" or
// "check:<relation>"), the formula text, the model identifier, how long
// it took, and the error when there is one. The result itself is not
// logged.
func Invocation(logger *zap.Logger, operation, formula, model string, elapsedMS int64, err error) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("formula", formula),
		zap.String("model", model),
		zap.Int64("elapsed_ms", elapsedMS),
	}
	if err != nil {
		logger.Error("gsv invocation failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Info("gsv invocation completed", fields...)
}
