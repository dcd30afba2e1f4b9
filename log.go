package pico

import "github.com/sirupsen/logrus"

// newDefaultLogger returns the package-wide fallback logger used when a
// Database is constructed without WithLogger. It deliberately shares
// logrus's global StandardLogger so that a host program configuring
// logrus once (formatter, level, output) affects pico's log lines too.
func newDefaultLogger() *logrus.Logger {
	return logrus.StandardLogger()
}
