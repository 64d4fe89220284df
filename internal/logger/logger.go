package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

type UTCFormatter struct{ logrus.Formatter }

func (u UTCFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return u.Formatter.Format(e)
}

// New creates a logger for command-line use. Output goes to stderr so token
// output on stdout stays clean.
func New(json bool) *logrus.Logger {
	log := logrus.New()
	SetFormat(log, json)
	return log
}

func SetFormat(log *logrus.Logger, json bool) {
	if json {
		log.Formatter = UTCFormatter{&logrus.JSONFormatter{
			TimestampFormat: time.RFC1123,
		}}
	} else {
		log.Formatter = UTCFormatter{&logrus.TextFormatter{
			TimestampFormat: time.RFC1123,
		}}
	}
}

// SetVerbosity maps a repeated -v flag count to a log level.
func SetVerbosity(log *logrus.Logger, v int) {
	switch v {
	case 0:
		log.SetLevel(logrus.WarnLevel)
	case 1:
		log.SetLevel(logrus.InfoLevel)
	case 2:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.TraceLevel)
	}
}
