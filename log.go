package dtplus

/*
log.go contains the package logger. Nothing in this package logs above
the warning level, and only strict-mode range complaints which do not
produce an error are logged at all.
*/

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logMu  sync.RWMutex
	logger = newDefaultLogger()
)

func newDefaultLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "dtplus",
		Level:           log.WarnLevel,
		ReportTimestamp: false,
	})
	return l
}

/*
SetLogger replaces the package logger. A nil input restores the
default logger, which writes warnings to standard error.
*/
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

/*
Logger returns the package logger.
*/
func Logger() *log.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func warnRange(field string, v int) {
	Logger().Warn("field value out of range", "field", field, "value", v)
}
