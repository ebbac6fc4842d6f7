package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Init configures the process logger. JSON output in production, text otherwise.
func Init(level string, production bool) {
	once.Do(func() {
		logger = newLogger(level, production)
	})
}

// L returns the process logger, initialising a default one if Init was never called.
func L() *logrus.Logger {
	once.Do(func() {
		logger = newLogger("info", false)
	})
	return logger
}

func newLogger(level string, production bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if production {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
