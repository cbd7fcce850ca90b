package logging

import (
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var (
	logger    = zerolog.New(io.Discard)
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled.
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename, level string) (cleanup func(), err error) {
	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	debugMode = lvl <= zerolog.DebugLevel

	if filename == "" {
		logger = zerolog.New(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func IsDebugMode() bool { return debugMode }

func Debugf(format string, args ...any) { logger.Debug().Msgf(format, args...) }

func Infof(format string, args ...any) { logger.Info().Msgf(format, args...) }

func Warnf(format string, args ...any) { logger.Warn().Msgf(format, args...) }

func Errorf(format string, args ...any) { logger.Error().Msgf(format, args...) }
