// Package logging builds the zap logger shared by the server and services.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/alchemorsel-voice/backend/config"
)

// New returns a JSON production logger for production and CI, and a console
// development logger otherwise. A non-empty level overrides the default.
func New(env config.Environment, level string) (*zap.Logger, error) {
	var zcfg zap.Config
	if env.StructuredLogs() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.String("env", string(env))), nil
}
