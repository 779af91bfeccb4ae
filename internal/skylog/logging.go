// Package skylog provides the structured logging used across the
// ephemeris, transit, and dasha packages.
package skylog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls where and how log output is written.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns Warning-level logging, matching the default
// log_level option, written to the console and to a rotating file under
// ~/.config/indic-ephemeris/logs.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "warn",
		Console:    true,
		File:       true,
		FilePath:   filepath.Join(home, ".config", "indic-ephemeris", "logs", "ephemeris.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger builds a logger from DefaultLogConfig.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig builds a zerolog.Logger writing to console and/or a
// rotating file per cfg.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stdout
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger attached to ctx, or a no-op logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// WithBody adds a body field to the logger context.
func WithBody(logger zerolog.Logger, body string) zerolog.Logger {
	return logger.With().Str("body", body).Logger()
}

// LogOracleCall logs a single oracle round trip, including any warning the
// oracle attached to a successful result.
func LogOracleCall(logger zerolog.Logger, body string, julianDay float64, duration time.Duration, warning string, err error) {
	event := logger.Debug().
		Str("event", "oracle_call").
		Str("body", body).
		Float64("julian_day", julianDay).
		Dur("duration", duration)
	switch {
	case err != nil:
		logger.Error().Str("event", "oracle_call").Str("body", body).Float64("julian_day", julianDay).Err(err).Msg("oracle call failed")
	case warning != "":
		logger.Warn().Str("event", "oracle_call").Str("body", body).Float64("julian_day", julianDay).Str("warning", warning).Msg("oracle call succeeded with warning")
	default:
		event.Msg("oracle call completed")
	}
}

// LogRetrogradeFringe logs that fix_edges skipped correction because a
// body's retrograde duration left insufficient room between transits.
func LogRetrogradeFringe(logger zerolog.Logger, body string, reason string) {
	logger.Warn().
		Str("event", "retrograde_fringe_skipped").
		Str("body", body).
		Str("reason", reason).
		Msg("skipped retrograde edge correction")
}

// LogEdgeRefinement logs a bisection refinement that exhausted its
// resolution floor without locating an edge.
func LogEdgeRefinement(logger zerolog.Logger, body string, from, to time.Time) {
	logger.Warn().
		Str("event", "resolution_exhausted").
		Str("body", body).
		Time("from", from).
		Time("to", to).
		Msg("bisection reached resolution floor without locating an edge")
}

// LogTransitFound logs one transit interval as Finder.Transits reports
// it, at debug level.
func LogTransitFound(logger zerolog.Logger, body string, start, end time.Time) {
	logger.Debug().
		Str("event", "transit_found").
		Str("body", body).
		Time("start", start).
		Time("end", end).
		Msg("transit interval found")
}

// LogDashaBoundary logs a Vimshottari subdivision boundary as it's
// computed, at debug level.
func LogDashaBoundary(logger zerolog.Logger, depth string, planet string, start, end time.Time) {
	logger.Debug().
		Str("event", "dasha_boundary").
		Str("depth", depth).
		Str("planet", planet).
		Time("start", start).
		Time("end", end).
		Msg("dasha period computed")
}
