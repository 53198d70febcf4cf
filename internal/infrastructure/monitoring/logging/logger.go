// Package logging provides the structured logging interface used across
// MacBench and its zap-backed implementation.  Components depend on the
// Logger interface defined here; go.uber.org/zap is only imported by this
// package.
//
// Initialisation order in cmd/*/main.go:
//
//  1. Load configuration.
//  2. NewLogger(cfg.Log) and SetDefault.
//  3. Build every other component, injecting the Logger.
package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by LogConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Field is a typed key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a Field with a string value.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Strings constructs a Field with a string slice value.
func Strings(key string, val []string) Field { return Field{Key: key, Value: val} }

// Int constructs a Field with an int value.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Float64 constructs a Field with a float64 value.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Bool constructs a Field with a bool value.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Duration constructs a Field with a time.Duration value.
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err captures an error under the canonical key "error".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any constructs a Field with an arbitrary value.
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }

// Logger is the structured logging contract.  Components receive a Logger
// through their constructor; tests pass NewNopLogger().
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal logs and then calls os.Exit(1).  Startup failures only.
	Fatal(msg string, fields ...Field)

	// With returns a child Logger carrying fields on every entry.
	With(fields ...Field) Logger

	// Named returns a child Logger whose name is appended with a period
	// separator (e.g. "macbench" → "macbench.advisor").
	Named(name string) Logger
}

// LevelSetter is implemented by loggers whose minimum level can change at
// runtime (config hot reload).
type LevelSetter interface {
	SetLevel(level string)
}

// LogConfig carries the parameters required to construct a Logger.
type LogConfig struct {
	// Level: debug | info | warn | error.  Unknown values mean info.
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format: json | console.  Unknown values mean json.
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// OutputPaths defaults to ["stdout"] when nil.
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths" json:"output_paths"`

	// ErrorOutputPaths defaults to ["stderr"] when nil.
	ErrorOutputPaths []string `mapstructure:"error_output_paths" yaml:"error_output_paths" json:"error_output_paths"`
}

type zapLogger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

func (f Field) zap() zap.Field {
	switch v := f.Value.(type) {
	case string:
		return zap.String(f.Key, v)
	case []string:
		return zap.Strings(f.Key, v)
	case int:
		return zap.Int(f.Key, v)
	case int64:
		return zap.Int64(f.Key, v)
	case float64:
		return zap.Float64(f.Key, v)
	case bool:
		return zap.Bool(f.Key, v)
	case time.Duration:
		return zap.Duration(f.Key, v)
	case error:
		return zap.NamedError(f.Key, v)
	}
	return zap.Any(f.Key, f.Value)
}

func (l *zapLogger) write(lvl zapcore.Level, msg string, fields []Field) {
	ce := l.z.Check(lvl, msg)
	if ce == nil {
		return
	}
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = f.zap()
	}
	ce.Write(zf...)
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.write(zapcore.DebugLevel, msg, fields) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.write(zapcore.InfoLevel, msg, fields) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.write(zapcore.WarnLevel, msg, fields) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.write(zapcore.ErrorLevel, msg, fields) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.write(zapcore.FatalLevel, msg, fields) }

func (l *zapLogger) With(fields ...Field) Logger {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = f.zap()
	}
	return &zapLogger{z: l.z.With(zf...), level: l.level}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name), level: l.level}
}

// SetLevel adjusts the shared level; children created by With or Named follow.
func (l *zapLogger) SetLevel(level string) {
	l.level.SetLevel(parseLevel(level))
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(ec)
}

// NewLogger opens cfg's output paths and returns a zap-backed Logger.
func NewLogger(cfg LogConfig) (Logger, error) {
	outputs, errOutputs := cfg.OutputPaths, cfg.ErrorOutputPaths
	if outputs == nil {
		outputs = []string{"stdout"}
	}
	if errOutputs == nil {
		errOutputs = []string{"stderr"}
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("logging: at least one output path is required")
	}

	sink, closeSink, err := zap.Open(outputs...)
	if err != nil {
		return nil, fmt.Errorf("logging: open outputs: %w", err)
	}
	errSink, _, err := zap.Open(errOutputs...)
	if err != nil {
		closeSink()
		return nil, fmt.Errorf("logging: open error outputs: %w", err)
	}

	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	opts := []zap.Option{zap.ErrorOutput(errSink), zap.AddCaller(), zap.AddCallerSkip(2)}
	if cfg.Format == "console" {
		opts = append(opts, zap.Development())
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), sink, level)
	return &zapLogger{z: zap.New(core, opts...), level: level}, nil
}

// NewLoggerFromCore wraps core, typically a zaptest/observer core.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{
		z:     zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Fatal(string, ...Field) {}
func (n nopLogger) With(...Field) Logger { return n }
func (n nopLogger) Named(string) Logger  { return n }

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

type loggerBox struct{ Logger }

var std atomic.Pointer[loggerBox]

// SetDefault replaces the process-wide Logger. nil is ignored.
func SetDefault(l Logger) {
	if l != nil {
		std.Store(&loggerBox{l})
	}
}

// Default returns the process-wide Logger, a no-op one until SetDefault.
func Default() Logger {
	if b := std.Load(); b != nil {
		return b.Logger
	}
	return nopLogger{}
}

//Personal.AI order the ending
