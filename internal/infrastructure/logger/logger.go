package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// Options configures the application logger.
type Options struct {
	Level      string
	FormatJSON bool
	// FileName enables a rotating log file next to stdout when set.
	FileName string
}

// AppLogger adapts a logrus logger to the usecase logging port.
type AppLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a logrus backed logger.
func NewLogger(opts Options) usecasecontract.IAppLogger {
	l := logrus.New()
	if opts.FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetLevel(parseLevel(opts.Level))

	if opts.FileName == "" {
		l.SetOutput(os.Stdout)
	} else {
		if !strings.HasSuffix(opts.FileName, ".log") {
			opts.FileName += ".log"
		}
		l.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename: opts.FileName,
			MaxSize:  50, // megabytes
			Compress: true,
		}))
	}
	return &AppLogger{entry: logrus.NewEntry(l)}
}

// NewFromLogrus wraps an existing logrus logger.
func NewFromLogrus(l *logrus.Logger) usecasecontract.IAppLogger {
	return &AppLogger{entry: logrus.NewEntry(l)}
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Debugf logs a debug message.
func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Infof logs an info message.
func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Warningf logs a warning message.
func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}

// Errorf logs an error message.
func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}
