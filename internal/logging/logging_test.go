package logging

import (
	"os"
	"path/filepath"
	"testing"

	gommonlog "github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("applies level and json format", func(t *testing.T) {
		logger := logrus.New()

		require.NoError(t, Setup(logger, Options{Level: "warn", Format: "json"}))

		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("writes to a rotated file", func(t *testing.T) {
		logger := logrus.New()
		path := filepath.Join(t.TempDir(), "logs", "organizer.log")

		require.NoError(t, Setup(logger, Options{Level: "info", File: path, MaxSizeMB: 1}))
		logger.Info("hello")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		assert.Error(t, Setup(logrus.New(), Options{Level: "loud"}))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		assert.Error(t, Setup(logrus.New(), Options{Level: "info", Format: "xml"}))
	})
}

func TestEchoLevel(t *testing.T) {
	assert.Equal(t, gommonlog.DEBUG, EchoLevel(logrus.TraceLevel))
	assert.Equal(t, gommonlog.DEBUG, EchoLevel(logrus.DebugLevel))
	assert.Equal(t, gommonlog.INFO, EchoLevel(logrus.InfoLevel))
	assert.Equal(t, gommonlog.WARN, EchoLevel(logrus.WarnLevel))
	assert.Equal(t, gommonlog.ERROR, EchoLevel(logrus.ErrorLevel))
}

func TestGormLogger(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	assert.NotNil(t, GormLogger(logger))
}
