package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rsskit/rss/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "debug", "json")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("items", 2).Info("feed written")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "feed written", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, float64(2), entry["items"])
	require.Contains(t, entry, "timestamp")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn", "text")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)
}
