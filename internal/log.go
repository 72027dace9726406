package internal

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu sync.RWMutex
	logger   logrus.FieldLogger = newSilentLogger()
)

func newSilentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger installs the logger used by the engine. The engine only logs at
// debug level, to explain why an operation produced no result. Passing nil
// restores the default, which discards everything.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func Logger() logrus.FieldLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
