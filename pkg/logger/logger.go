package logger

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

// Package logger is a thin wrapper around logrus' standard logger.
//
// It is designed to be imported as `log`, so the CLI and library packages
// share a single logging backend configured once via pkg/bootstrap.

type Fields = log.Fields
type Entry = log.Entry
type Logger = log.Logger
type Level = log.Level
type Hook = log.Hook

const (
	ErrorLevel = log.ErrorLevel
	WarnLevel  = log.WarnLevel
	InfoLevel  = log.InfoLevel
	DebugLevel = log.DebugLevel
)

// 返回码相关日志字段
const (
	FieldRetCode   = "ret_code"
	FieldRetSymbol = "ret_symbol"
	FieldRetMsg    = "ret_msg"
)

func StandardLogger() *Logger         { return log.StandardLogger() }
func AddHook(h Hook)                  { log.AddHook(h) }
func SetLevel(level Level)            { log.SetLevel(level) }
func SetOutput(out io.Writer)         { log.SetOutput(out) }
func IsLevelEnabled(level Level) bool { return log.IsLevelEnabled(level) }

func WithField(key string, value any) *Entry { return log.WithField(key, value) }
func WithFields(fields Fields) *Entry        { return log.WithFields(fields) }
func WithError(err error) *Entry             { return log.WithError(err) }

// WithTrace binds ctx and adds "trace_id" when OpenTelemetry span context is present.
func WithTrace(ctx context.Context) *Entry {
	if ctx == nil {
		return log.NewEntry(log.StandardLogger())
	}
	e := log.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithField("trace_id", sc.TraceID().String())
	}
	return e
}

// RetcodeFields returns ret_code/ret_symbol/ret_msg for code resolved by r.
// A nil r uses the default locale.
func RetcodeFields(r *codes.Resolver, code int) Fields {
	if r == nil {
		r = codes.Default()
	}
	return Fields{
		FieldRetCode:   code,
		FieldRetSymbol: codes.Code(code).String(),
		FieldRetMsg:    r.Resolve(code),
	}
}

// WithRetcode returns an entry carrying the resolved fields of code.
func WithRetcode(code int) *Entry {
	return log.WithFields(RetcodeFields(nil, code))
}

func Debug(args ...any) { log.Debug(args...) }
func Info(args ...any)  { log.Info(args...) }
func Warn(args ...any)  { log.Warn(args...) }
func Error(args ...any) { log.Error(args...) }
func Fatal(args ...any) { log.Fatal(args...) }

func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
func Fatalf(format string, args ...any) { log.Fatalf(format, args...) }
