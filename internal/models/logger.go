package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger sends gorm's log output to zerolog.
type logger struct {
	Logger zerolog.Logger
	level  gorm_logger.LogLevel
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
	case elapsed > slowQuery:
		l.Logger.Warn().Fields(fields).Msg("[GORM] slow query")
	default:
		l.Logger.Debug().Fields(fields).Msg("[GORM] query")
	}
}
