package logsvc

import (
	"log"

	"github.com/trezcool/mipango/core"
)

// stdLogger wraps the standard library logger with levels.
type stdLogger struct {
	log *log.Logger
}

var _ core.Logger = (*stdLogger)(nil)

func NewStdLogger(l *log.Logger) *stdLogger {
	return &stdLogger{log: l}
}

func (l *stdLogger) Debug(msg string, args ...interface{}) { l.print("DEBUG", msg, args...) }
func (l *stdLogger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args...) }
func (l *stdLogger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args...) }
func (l *stdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args...) }

func (l *stdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args...)
	panic(msg)
}

func (l *stdLogger) print(level, msg string, args ...interface{}) {
	if len(args) > 0 {
		l.log.Printf("%s: %s %v", level, msg, args)
		return
	}
	l.log.Printf("%s: %s", level, msg)
}
