package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(parseLevel("warn"))

	log := NewFromLogrus(l)
	log.Infof("hidden %d", 1)
	log.Warningf("blog %s kept in category %s", "b1", "c1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "blog b1 kept in category c1", entry["msg"])
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, logrus.DebugLevel, parseLevel(" DEBUG "))
}
