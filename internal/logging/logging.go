package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used across the client. Logs go to stderr so
// rendered views on stdout stay clean. Unknown levels fall back to warn.
func SetupLogging(level string) *logrus.Logger {
	return SetupLoggingTo(os.Stderr, level)
}

// SetupLoggingTo is SetupLogging with an explicit destination.
func SetupLoggingTo(out io.Writer, level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:          out,
		Hooks:        make(logrus.LevelHooks),
		Level:        parsed,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}

	return &logger
}

// Discard returns a logger that writes nowhere, for tests.
func Discard() *logrus.Logger {
	return SetupLoggingTo(io.Discard, "panic")
}
