package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	rollbarerrs "github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/user"
)

// rollbarLogger logs to stderr and reports warnings and errors to Rollbar.
type rollbarLogger struct {
	std *stdLogger
}

var _ core.Logger = (*rollbarLogger)(nil)

func NewRollbarLogger(l *log.Logger, conf *core.Config) *rollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetServerRoot("github.com/trezcool/mipango")
	rollbar.SetStackTracer(rollbarerrs.StackTracer)
	return &rollbarLogger{std: NewStdLogger(l)}
}

func (l *rollbarLogger) Debug(msg string, args ...interface{}) {
	l.std.Debug(msg, args...)
}

func (l *rollbarLogger) Info(msg string, args ...interface{}) {
	l.std.Info(msg, args...)
}

func (l *rollbarLogger) Warn(msg string, args ...interface{}) {
	l.std.Warn(msg, args...)
	rollbar.Warning(append([]interface{}{msg}, l.extras(args)...)...)
	rollbar.Wait()
}

func (l *rollbarLogger) Error(msg string, args ...interface{}) {
	l.std.Error(msg, args...)
	l.report(rollbar.ERR, msg, args)
}

func (l *rollbarLogger) Fatal(msg string, args ...interface{}) {
	l.report(rollbar.CRIT, msg, args)
	l.std.Fatal(msg, args...)
}

func (l *rollbarLogger) report(level, msg string, args []interface{}) {
	rollbar.Log(level, append([]interface{}{msg}, l.extras(args)...)...)
	rollbar.Wait()
}

// extras filters the trailing args, turning a user.User into the
// reported person.
func (l *rollbarLogger) extras(args []interface{}) []interface{} {
	extras := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if usr, ok := arg.(user.User); ok {
			rollbar.SetPerson(usr.ID, usr.Name, usr.Email)
			continue
		}
		extras = append(extras, arg)
	}
	return extras
}
