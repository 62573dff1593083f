// Package logger sets up the process logger.
// The terminal backend owns stdout, so logs go to a file when debugging and nowhere otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDir is the log directory relative to the working directory
	DefaultDir = "logs"

	logFileName = "mandelview.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Setup returns a logger tagged with a fresh session id
// With debug off output is discarded and the returned file is nil.
// With debug on entries are appended to dir/mandelview.log, which is rotated first when larger than 10 MiB;
// the caller closes the returned file.
func Setup(debug bool, dir string) (*logrus.Entry, *os.File, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})

	if !debug {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.WarnLevel)
		return withSession(l), nil, nil
	}

	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)

	entry := withSession(l)
	entry.Info("logging started")
	return entry, f, nil
}

func withSession(l *logrus.Logger) *logrus.Entry {
	return l.WithField("session", uuid.NewString())
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
