// Package logger wraps logrus with the process-wide logger used by sitecfg.
// Output is discarded unless SITECFG_DEBUG is set or Enable is called.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

var (
	log  *logrus.Logger
	once sync.Once
)

func initialize() {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if lvl := os.Getenv("SITECFG_DEBUG"); lvl != "" {
			enable(os.Stderr, lvl)
		}
	})
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	initialize()
	return log
}

// Enable routes log output to w at the named level (debug, info, warn, error).
// Unknown levels fall back to debug.
func Enable(w io.Writer, level string) {
	initialize()
	enable(w, level)
}

func enable(w io.Writer, level string) {
	log.SetOutput(w)
	switch strings.ToLower(level) {
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("level", log.GetLevel()).Debug("logging enabled")
}
