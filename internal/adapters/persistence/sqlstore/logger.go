package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/task-service/internal/platform/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm's log output into slog. Statement traces are
// emitted at debug level; slow statements at warn; failures at error.
// Record-not-found is expected control flow and is not logged as an error.
type gormLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger adapts logger to gorm's logger interface. A nil logger
// discards everything.
func NewGormLogger(logger *slog.Logger) gormlogger.Interface {
	return &gormLogger{logger: logging.Component(logger, "gorm"), level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.logger.ErrorContext(ctx, "sql statement failed", append(attrs, slog.Any("error", err))...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "slow sql statement", attrs...)
	case l.level >= gormlogger.Info:
		l.logger.DebugContext(ctx, "sql statement", attrs...)
	}
}
