package zap

import (
	"time"

	"github.com/kristinawk/bicimad-nearest/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to stderr so stdout stays free for the report.
func New(cfg config.Configuration) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "console"
	zapCfg.Level = zap.NewAtomicLevelAt(level(cfg.Level))
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.TimeFormat))
	}

	return zapCfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
}

func level(l int) zapcore.Level {
	switch l {
	case config.FATAL_LEVEL:
		return zapcore.FatalLevel
	case config.ERROR_LEVEL:
		return zapcore.ErrorLevel
	case config.WARN_LEVEL:
		return zapcore.WarnLevel
	case config.DEBUG_LEVEL:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
