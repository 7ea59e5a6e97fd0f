// Package log configures the process-wide logrus logger from viper
// settings and exposes leveled helpers.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/key"
)

// Fields is an alias so callers do not need to import logrus.
type Fields = logrus.Fields

// Setup applies the logs.* settings. Unknown levels fall back to info.
func Setup() {
	SetOutput(os.Stderr)

	if viper.GetBool(key.LogsJSON) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// WithError returns an entry carrying err.
func WithError(err error) *logrus.Entry {
	return logrus.WithError(err)
}

// WithField returns an entry carrying one field.
func WithField(k string, v interface{}) *logrus.Entry {
	return logrus.WithField(k, v)
}

func Fatal(args ...interface{})                 { logrus.Fatal(args...) }
func Fatalf(format string, args ...interface{}) { logrus.Fatalf(format, args...) }
func Error(args ...interface{})                 { logrus.Error(args...) }
func Errorf(format string, args ...interface{}) { logrus.Errorf(format, args...) }
func Warn(args ...interface{})                  { logrus.Warn(args...) }
func Warnf(format string, args ...interface{})  { logrus.Warnf(format, args...) }
func Info(args ...interface{})                  { logrus.Info(args...) }
func Infof(format string, args ...interface{})  { logrus.Infof(format, args...) }
func Debug(args ...interface{})                 { logrus.Debug(args...) }
func Debugf(format string, args ...interface{}) { logrus.Debugf(format, args...) }
