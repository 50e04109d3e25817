package commands

import (
	"io"

	"github.com/erraggy/phpscoper/scoper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger adapts a zap sugared logger to scoper.Logger.
type zapLogger struct {
	logger *zap.SugaredLogger
}

// newLogger returns a console logger writing to w. Debug messages are only
// emitted when verbose is set; quiet keeps errors only.
func newLogger(w io.Writer, verbose, quiet bool) scoper.Logger {
	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return &zapLogger{logger: zap.New(core).Sugar()}
}

func (z *zapLogger) Debug(msg string, attrs ...any) { z.logger.Debugw(msg, attrs...) }
func (z *zapLogger) Info(msg string, attrs ...any)  { z.logger.Infow(msg, attrs...) }
func (z *zapLogger) Warn(msg string, attrs ...any)  { z.logger.Warnw(msg, attrs...) }
func (z *zapLogger) Error(msg string, attrs ...any) { z.logger.Errorw(msg, attrs...) }

func (z *zapLogger) With(attrs ...any) scoper.Logger {
	return &zapLogger{logger: z.logger.With(attrs...)}
}

var _ scoper.Logger = (*zapLogger)(nil)
