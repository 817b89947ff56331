// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called so that
// library code and tests can log freely.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger from the environment.
//
//   - LOG_LEVEL: any logrus level name, "info" by default.
//   - LOG_FORMAT: "json" for machine-readable output, text otherwise.
//   - LOG_FILE: append to this file instead of stderr.
//
// Init must be called once at startup, before the terminal UI takes over
// stdout. Use SetOutput to redirect afterwards.
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stderr)
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.Warnf("cannot open LOG_FILE %s, logging to stderr: %v", path, err)
			return
		}
		Log.SetOutput(f)
	}
}

// SetOutput redirects the global logger.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
