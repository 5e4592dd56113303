package logging

import (
    "io"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
    "gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logger instance
var Logger zerolog.Logger

func init() {
    Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
    zerolog.SetGlobalLevel(zerolog.InfoLevel)
    log.Logger = Logger
}

// ParseLevel maps debug|info|warn|error to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
    switch strings.ToLower(strings.TrimSpace(level)) {
    case "debug":
        return zerolog.DebugLevel
    case "warn", "warning":
        return zerolog.WarnLevel
    case "error":
        return zerolog.ErrorLevel
    default:
        return zerolog.InfoLevel
    }
}

// Init configures the global logger. When file is non-empty every line also goes
// to a rotating log file; the returned closer flushes it.
func Init(level string, pretty bool, file string) (io.Closer, error) {
    zerolog.SetGlobalLevel(ParseLevel(level))

    var console io.Writer = os.Stderr
    if pretty {
        console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
    }

    out := console
    var closer io.Closer = nopCloser{}
    if file != "" {
        if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil { return nil, err }
        rotator := &lumberjack.Logger{
            Filename:   file,
            MaxSize:    10, // MB
            MaxBackups: 3,
            MaxAge:     28, // days
            Compress:   true,
        }
        out = zerolog.MultiLevelWriter(console, rotator)
        closer = rotator
    }

    Logger = zerolog.New(out).With().Timestamp().Logger()
    log.Logger = Logger
    return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
