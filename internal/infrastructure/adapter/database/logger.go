package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// sqlLogger routes GORM output through the application logger so SQL entries
// carry the same encoding and level as the rest of the service
type sqlLogger struct {
	log   coreport.Logger
	clock coreport.TimeProvider
	level gormlogger.LogLevel
	slow  time.Duration
}

// NewDatabaseLogger returns a GORM logger writing to log. Statements slower than
// slow are logged at warn level; slow <= 0 disables that check.
func NewDatabaseLogger(log coreport.Logger, clock coreport.TimeProvider, level string, slow time.Duration) gormlogger.Interface {
	return &sqlLogger{
		log:   log.With(map[string]any{"source": "database"}),
		clock: clock,
		level: gormLevel(level),
		slow:  slow,
	}
}

func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *sqlLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *sqlLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *sqlLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...), nil)
	}
}

// Trace logs one executed statement. A missing row is the normal answer to a
// first delivery's lookup, so it never goes above debug.
func (l *sqlLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := l.since(begin)
	sql, rows := fc()
	verb, table := describeStatement(sql)

	fields := map[string]any{
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	}
	if verb != "" {
		fields["type"] = verb
	}
	if table != "" {
		fields["table"] = table
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	notFound := errors.Is(err, gormlogger.ErrRecordNotFound)
	switch {
	case err != nil && !notFound && l.level >= gormlogger.Error:
		l.log.Error("SQL statement failed", fields)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		l.log.Warn("Slow SQL statement", fields)
	case l.level >= gormlogger.Info:
		l.log.Debug("SQL statement", fields)
	}
}

func (l *sqlLogger) since(begin time.Time) time.Duration {
	if l.clock != nil {
		return l.clock.Since(begin)
	}
	return time.Since(begin)
}

// describeStatement returns the statement verb and the first table it names
func describeStatement(sql string) (verb, table string) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "", ""
	}

	verb = strings.ToUpper(fields[0])
	switch verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
	default:
		return "", ""
	}

	for i, f := range fields {
		keyword := strings.ToUpper(f)
		if (keyword == "FROM" || keyword == "INTO" || (keyword == "UPDATE" && i == 0)) && i+1 < len(fields) {
			return verb, strings.Trim(fields[i+1], "\"`")
		}
	}
	return verb, ""
}
