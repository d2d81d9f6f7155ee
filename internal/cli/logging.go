package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger on w. Unknown or empty levels mean warn.
func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil || level == "" {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)

	return log
}
