package logger

import (
	"io"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/zerolog"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// empty writes to stderr
	File string `config:"file"`
	// trace | debug | info | notice | warn | error | fatal
	Level string `config:"level" default:"error" vd:"omitempty,oneof=trace debug info notice warn error fatal"`
	// 30 day
	MaxAge int `config:"maxAge" default:"30"`
	// 128 MB
	MaxSize    int `config:"maxSize" default:"128"`
	MaxBackups int `config:"maxBackups" default:"32"`
}

type Logger struct {
	*zerolog.Logger
	Writer io.Writer
}

// NewByMode returns a console logger in dev mode and a file logger otherwise.
func NewByMode(mode string, c *Config) *Logger {
	if mode == "dev" || c.File == "" {
		return NewConsole(c)
	}
	return New(c)
}

func New(c *Config) *Logger {
	logger := zerolog.New(
		zerolog.WithFormattedTimestamp(time.DateTime),
	)

	lumberjackLogger := lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
	}

	// async writer
	logWriter := &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(&lumberjackLogger),
		FlushInterval: time.Second,
	}

	logger.SetOutput(logWriter)
	logger.SetLevel(GetLogLevel(c.Level))

	return &Logger{Logger: logger, Writer: logWriter}
}

func NewConsole(c *Config) *Logger {
	logger := zerolog.New(
		zerolog.WithFormattedTimestamp(time.Kitchen),
	)

	logWriter := zerolog.ConsoleWriter{
		Out: os.Stderr,
	}

	logger.SetOutput(logWriter)
	logger.SetLevel(GetLogLevel(c.Level))

	return &Logger{Logger: logger, Writer: logWriter}
}

// Sync flushes a buffered file writer; console loggers are a no-op.
func (l *Logger) Sync() error {
	if ws, ok := l.Writer.(zapcore.WriteSyncer); ok {
		return ws.Sync()
	}
	return nil
}

func GetLogLevel(level string) hlog.Level {
	switch level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
