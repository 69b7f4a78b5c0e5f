package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "warn")

	l.Infof("hidden %d", 1)
	l.Warnf("shown %s", "warning")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown warning", entry["message"])
	assert.Equal(t, "midnight-muse", entry["service"])
}

func TestZerologLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "loud")
	l.Debugf("nope")
	l.Infof("yes")
	assert.Contains(t, buf.String(), `"message":"yes"`)
	assert.NotContains(t, buf.String(), "nope")
}
