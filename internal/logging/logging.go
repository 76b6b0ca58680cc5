// Package logging builds the diagnostic side channel. The protocol
// framing owns stdout, so loggers write to stderr or a file — never
// stdout.
package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// session tags every entry from this process so interleaved runs can be
// told apart in shared log files.
var session = uuid.NewString()[:8]

// New creates a logger that writes to logs/<component>.log and returns it with a cleanup.
func New(component string) (*logrus.Entry, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, nil, err
	}
	path := filepath.Join("logs", component+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger.SetOutput(f)
	entry := logger.WithField("component", component).WithField("session", session)
	return entry, func() { _ = f.Close() }, nil
}

// NewStderr creates a logger for stdio deployments, where stdout carries
// protocol frames and must stay clean.
func NewStderr(component string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	return logger.WithField("component", component).WithField("session", session)
}
