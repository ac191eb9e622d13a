package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init configures the process logger. Level falls back to LOG_LEVEL,
// then to info (debug in development). JSON format outside development
// or when LOG_FORMAT=json.
func Init(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.StandardLogger()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}
	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)
	return log
}

// WithMatchup tags a logger entry with the two sides of a game.
func WithMatchup(log *logrus.Logger, home, away string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"home": home,
		"away": away,
	})
}
