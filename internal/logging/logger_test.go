package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", "")
	require.NoError(t, err)

	logger.Info("Total rows: 2")
	logger.Debug("hidden")

	assert.Contains(t, buf.String(), "Total rows: 2")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "json", "debug")
	require.NoError(t, err)

	logger.Debug("Loading data into RAW.CIGNA_TABLE")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Loading data into RAW.CIGNA_TABLE", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "LOGFMT", "warn")
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNew_Invalid(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "xml", "")
	assert.Error(t, err)

	_, err = New(&buf, "text", "loud")
	assert.Error(t, err)
}
