// Package logutil builds the logger every repository writes to its
// own log file
package logutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ParseLevel converts a config log level into a logrus one.
// logrus has no critical level, so critical maps to the closest one
func ParseLevel(level string) (logrus.Level, error) {
	if level == "critical" {
		return logrus.FatalLevel, nil
	}
	return logrus.ParseLevel(level)
}

// New returns a logger writing to w, dropping every line below the
// provided level
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}
