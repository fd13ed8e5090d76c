package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Component names the log file: logs/<component>.log.
	Component string
	Level     string
	Dir       string
	// Console mirrors every entry to stdout.
	Console bool
}

// NewLogger returns a JSON logrus logger writing asynchronously to a file.
// The returned closer flushes pending lines.
func NewLogger(opts Options) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.Component == "" {
		opts.Component = "trustassess"
	}
	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := filepath.Join(filepath.Clean(opts.Dir), filepath.Base(opts.Component)+".log")
	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)

	if opts.Console {
		logger.AddHook(NewConsoleHook(os.Stdout))
	}

	return logger, asyncWriter.Close, nil
}
