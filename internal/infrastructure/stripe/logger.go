package stripe

import (
	"context"
	"fmt"
	"log/slog"

	stripego "github.com/stripe/stripe-go/v82"
)

// leveledLogger routes SDK log lines into slog.
type leveledLogger struct {
	logger *slog.Logger
}

var _ stripego.LeveledLoggerInterface = (*leveledLogger)(nil)

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Infof(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

func (l *leveledLogger) log(level slog.Level, format string, v ...interface{}) {
	l.logger.Log(context.Background(), level, fmt.Sprintf(format, v...), "component", "stripe")
}
