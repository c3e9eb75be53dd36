// Package log provides the package-level diagnostic logger used by
// pkg/resp and cmd/respcodec. It is deliberately narrow: a codec has
// nothing interesting to say above Debugf (a retained incomplete aggregate,
// a protocol error), so unlike a full service logger there is no Infof/Warnf/
// Errorf surface here.
package log

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New. The zero value logs nothing (see Options.Level).
type Options struct {
	Stdout     bool   `config:"stdout"`
	Level      string `config:"level"` // "debug" enables Debugf; anything else discards it
	Filename   string `config:"filename"`
	MaxSize    int `config:"maxSize"` // unit: MB
	MaxAge     int `config:"maxAge"`  // unit: days
	MaxBackups int `config:"maxBackups"`
}

// Logger is a Debugf-only sink, backed by zap.
type Logger struct {
	sugared *zap.SugaredLogger
}

func (l Logger) Debugf(template string, args ...any) {
	l.sugared.Debugf(template, args...)
}

func toZapLevel(s string) zapcore.Level {
	if s == "debug" {
		return zapcore.DebugLevel
	}
	return zapcore.InvalidLevel
}

// New builds a Logger writing either to stdout or to a rotated file,
// matched by a lumberjack.Logger the way a long-running codec server
// would want: bounded size, bounded age, bounded backup count.
func New(opt Options) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Local().Format("2006-01-02 15:04:05.000"))
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var w zapcore.WriteSyncer
	switch {
	case opt.Stdout || opt.Filename == "":
		w = zapcore.AddSync(os.Stdout)
	default:
		if err := os.MkdirAll(filepath.Dir(opt.Filename), os.ModePerm); err != nil {
			panic(err)
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    opt.MaxSize,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge,
			LocalTime:  true,
		})
	}

	core := zapcore.NewCore(encoder, w, toZapLevel(opt.Level))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return Logger{sugared: logger.Sugar()}
}

var std = New(Options{Stdout: true})

// SetOptions replaces the package-level logger used by Debugf.
func SetOptions(opt Options) {
	std = New(opt)
}

// Debugf logs through the package-level logger. It is a no-op unless
// SetOptions has been called with Level "debug".
func Debugf(template string, args ...any) {
	std.Debugf(template, args...)
}
