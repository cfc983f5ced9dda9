package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "debug", "json")

	log.WithField("complaint_id", 7).Info("complaint stored")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "complaint stored", entry["msg"])
	assert.Equal(t, float64(7), entry["complaint_id"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewWithOutputFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "chatty", "text")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestGormLoggerFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	quiet := GormLogger(NewWithOutput(&buf, "info", "text"))
	verbose := GormLogger(NewWithOutput(&buf, "debug", "text"))

	assert.NotNil(t, quiet)
	assert.NotNil(t, verbose)
}
