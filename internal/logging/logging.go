package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogLevelKey          = "log.level"
	LogFormatKey         = "log.format"
	LogNoColorKey        = "log.no_color"
	LogFileKey           = "log.file"
	LogFileMaxSizeKey    = "log.file_max_size"
	LogFileMaxBackupsKey = "log.file_max_backups"
)

const redacted = "********"

// Init sets up the global logger. If sensitive values are provided,
// it wraps every output with a redacting writer to mask those values in logs.
// When a log file is configured, JSON lines are additionally written to a
// rotating file.
func Init(sensitiveValues []string) {
	var queue []string

	levelStr := strings.ToLower(viper.GetString(LogLevelKey))
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
		queue = append(queue, fmt.Sprintf("invalid log level %q, using info", levelStr))
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stderr
	logFormat := strings.ToLower(viper.GetString(LogFormatKey))

	if logFormat != "json" {
		if logFormat != "console" {
			queue = append(queue, fmt.Sprintf("unknown log format %q, using console", logFormat))
		}
		output = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = redact(os.Stderr, sensitiveValues)
			w.NoColor = viper.GetBool(LogNoColorKey)
			w.TimeFormat = "15:04:05.000"
		})
	} else {
		output = redact(output, sensitiveValues)
	}

	if file := viper.GetString(LogFileKey); file != "" {
		output = zerolog.MultiLevelWriter(output, redact(NewRotatingFile(
			file,
			viper.GetInt(LogFileMaxSizeKey),
			viper.GetInt(LogFileMaxBackupsKey),
		), sensitiveValues))
	}

	log.Logger = zerolog.New(output).With().
		Timestamp().
		Logger()

	// now after we set up the logger, we can log any queued messages
	for _, msg := range queue {
		log.Warn().Msg(msg)
	}
}

// NewRotatingFile returns a writer that rotates filename once it grows past
// maxSizeMB. Non-positive values fall back to lumberjack's defaults.
func NewRotatingFile(filename string, maxSizeMB, maxBackups int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    max(maxSizeMB, 0),
		MaxBackups: max(maxBackups, 0),
		LocalTime:  true,
	}
}

func redact(w io.Writer, sensitive []string) io.Writer {
	if len(sensitive) == 0 {
		return w
	}
	return NewRedactingWriter(w, sensitive)
}

type RedactingWriter struct {
	underlying io.Writer
	sensitive  [][]byte
}

// NewRedactingWriter masks every non-empty sensitive value before passing
// the bytes on.
func NewRedactingWriter(underlying io.Writer, sensitive []string) *RedactingWriter {
	rw := &RedactingWriter{underlying: underlying}
	for _, s := range sensitive {
		if s != "" {
			rw.sensitive = append(rw.sensitive, []byte(s))
		}
	}
	return rw
}

func (rw *RedactingWriter) Write(p []byte) (n int, err error) {
	messageBytes := p

	for _, secret := range rw.sensitive {
		if bytes.Contains(messageBytes, secret) {
			messageBytes = bytes.ReplaceAll(messageBytes, secret, []byte(redacted))
		}
	}

	if _, err := rw.underlying.Write(messageBytes); err != nil {
		return 0, err
	}
	// report the caller's length, zerolog treats short writes as errors
	return len(p), nil
}
