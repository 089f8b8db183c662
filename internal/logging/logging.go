package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

const timeFormat = "2006-01-02 15:04:05"

// New builds the diagnostic logger. It never writes to the console transcript;
// callers pass os.Stderr.
func New(out io.Writer, debug, colored bool) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
		ForceColors:     colored,
		DisableColors:   !colored,
	})
	l.SetLevel(log.WarnLevel)
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Discard is a logger for tests and callers that do not care.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
