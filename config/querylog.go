package config

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogFunc receives one line per data-access call. Defaults to the
// standard logger; main wires the application logger in through
// SetQueryLogger.
var queryLogFunc = log.Printf

// SetQueryLogger replaces the destination for query log lines.
func SetQueryLogger(fn func(format string, v ...interface{})) {
	if fn != nil {
		queryLogFunc = fn
	}
}

// queryLogger adapts the application logger to gorm's logger.Interface so
// every query is logged with its SQL, row count and elapsed time.
type queryLogger struct{}

func newQueryLogger() logger.Interface {
	return queryLogger{}
}

func (l queryLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l queryLogger) Info(_ context.Context, format string, v ...interface{}) {
	queryLogFunc("Query info: "+format, v...)
}

func (l queryLogger) Warn(_ context.Context, format string, v ...interface{}) {
	queryLogFunc("Query warning: "+format, v...)
}

func (l queryLogger) Error(_ context.Context, format string, v ...interface{}) {
	queryLogFunc("Query error: "+format, v...)
}

func (l queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	elapsed := time.Since(begin)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		queryLogFunc("Query failed after %v: %s - %v", elapsed, sql, err)
		return
	}
	queryLogFunc("Running query (%d rows, %v): %s", rows, elapsed, sql)
}
