// Package logger provides structured logging using zap, shaped for a
// long-running render server rather than the desktop client it's
// adapted from: one process, one rotating session log, no per-player
// settings screen to parameterize rotation from.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance.
var Log *zap.Logger

// Sugar is the sugared logger for convenient logging.
var Sugar *zap.SugaredLogger

// A nop logger is the default until Init runs, so a unit test that drives
// internal/raycast or internal/transport straight through a protocol-error
// or offset-anomaly path — without standing up the whole server — logs
// into the void instead of dereferencing a nil *zap.Logger.
func init() {
	Log = zap.NewNop()
	Sugar = Log.Sugar()
}

// Rotation policy for the server's session log file. The client this
// package is adapted from exposed MaxSize/MaxBackups/MaxAge/Compress as
// fields on a FileConfig struct, because a desktop game's disk budget
// varies wildly by player machine. A voxelmon server runs the same
// workload everywhere it's deployed — one warn line per malformed
// upload, protocol violation, or out-of-range ray offset, from
// internal/raycast and internal/transport — so there is nothing here
// worth exposing as per-deployment config; it's a fixed policy instead.
const (
	rotateMaxSizeMB  = 100
	rotateMaxBackups = 5
	rotateMaxAgeDays = 14
)

// Init builds the package logger directly from the server's own
// internal/config fields, Logging.Level and Logging.LogFile, with
// console output enabled.
func Init(level, logFile string) error {
	return initCores(level, logFile, true)
}

// initCores builds the tee'd zap core: always a colored console core
// unless suppressed (only this package's own tests do that, to keep
// assertions on file content free of console noise), plus a rotating
// file core when logFile is non-empty.
func initCores(level, logFile string, consoleOutput bool) error {
	lvl := parseLevel(level)

	var cores []zapcore.Core

	if consoleOutput {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})

		cores = append(cores, zapcore.NewCore(
			consoleEncoder,
			zapcore.AddSync(os.Stdout),
			lvl,
		))
	}

	if logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    rotateMaxSizeMB,
			MaxBackups: rotateMaxBackups,
			MaxAge:     rotateMaxAgeDays,
			Compress:   true,
			LocalTime:  true, // rotated filenames use local time
		}

		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})

		cores = append(cores, zapcore.NewCore(
			fileEncoder,
			zapcore.AddSync(fileWriter),
			lvl,
		))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()

	return nil
}

// parseLevel converts a string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}
