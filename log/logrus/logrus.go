package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/hexcodec/blobstore"
)

// Logger adapts a logrus entry to blobstore.Logger.
type Logger struct{ E *logrus.Entry }

var _ blobstore.Logger = Logger{}

// New tags every record with component=blobstore.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "blobstore")}
}

func (l Logger) Debug(msg string, f blobstore.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f blobstore.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f blobstore.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f blobstore.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
