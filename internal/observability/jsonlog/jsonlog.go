package jsonlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"
)

type Fields map[string]any

type Logger struct {
	base *log.Logger
	now  func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		base: log.New(w, "", 0), // no prefix; we emit JSON ourselves
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

func (l *Logger) Info(msg string, fields Fields) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.emit("WARN", msg, fields)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.emit("ERROR", msg, fields)
}

// Printf logs a formatted INFO line, for call sites written against *log.Logger.
func (l *Logger) Printf(format string, args ...any) {
	l.emit("INFO", fmt.Sprintf(format, args...), nil)
}

func (l *Logger) emit(level, msg string, fields Fields) {
	m := make(map[string]any, 3+len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		m[k] = v
	}
	m["ts"] = l.now().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg

	b, err := json.Marshal(m)
	if err != nil {
		l.base.Printf(`{"level":"ERROR","msg":"log_marshal_failed","error":%q}`, err.Error())
		return
	}
	l.base.Print(string(b))
}
