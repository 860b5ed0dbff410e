// Package logging configures logrus for the server and adapts it for echo and
// GORM.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gommonlog "github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	Level      string
	Format     string // text or json
	File       string // empty logs to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup applies opts to logger. A File is rotated by lumberjack.
func Setup(logger *logrus.Logger, opts Options) error {
	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		return fmt.Errorf("log format %q: must be text or json", opts.Format)
	}

	if opts.File == "" {
		logger.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return fmt.Errorf("log directory: %w", err)
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	})
	return nil
}

// EchoLevel maps a logrus level onto echo's gommon logger.
func EchoLevel(level logrus.Level) gommonlog.Lvl {
	switch {
	case level >= logrus.DebugLevel:
		return gommonlog.DEBUG
	case level == logrus.InfoLevel:
		return gommonlog.INFO
	case level == logrus.WarnLevel:
		return gommonlog.WARN
	default:
		return gommonlog.ERROR
	}
}

// GormLogger sends GORM's slow query and error reports through logger.
func GormLogger(logger *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}

	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
