package logger

// CronLogger adapts a Logger to the interface expected by
// github.com/robfig/cron/v3 (cron.Logger).
type CronLogger struct {
	log Logger
}

func NewCronLogger(log Logger) CronLogger {
	return CronLogger{log: log.With("component", "cron")}
}

// Info is called by cron for scheduler lifecycle events (start, run, wake).
// They are noisy, so they go out at debug level.
func (l CronLogger) Info(message string, keysAndValues ...any) {
	l.log.Debug("cron: "+message, keysAndValues...)
}

func (l CronLogger) Error(err error, message string, keysAndValues ...any) {
	l.log.InternalError("cron: "+message, err, keysAndValues...)
}
