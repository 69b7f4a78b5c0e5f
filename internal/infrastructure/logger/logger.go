package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// ZerologLogger adapts zerolog to the IAppLogger contract.
type ZerologLogger struct {
	log zerolog.Logger
}

var _ usecasecontract.IAppLogger = (*ZerologLogger)(nil)

// NewLogger builds a leveled logger. In development output is human readable,
// otherwise one JSON object per line.
func NewLogger(level string, pretty bool) *ZerologLogger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewLoggerWithWriter(out, level)
}

// NewLoggerWithWriter is NewLogger with an explicit sink.
func NewLoggerWithWriter(out io.Writer, level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "midnight-muse").Logger()
	return &ZerologLogger{log: l}
}

// Zerolog exposes the underlying logger for components that log structured fields.
func (l *ZerologLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

// Debugf logs a debug message.
func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *ZerologLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

// Warningf logs a warning message.
func (l *ZerologLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal message and exits.
func (l *ZerologLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msg(fmt.Sprintf(format, args...))
}
