package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelTrace, GetLogLevel("trace"))
	assert.Equal(t, hlog.LevelNotice, GetLogLevel("notice"))
	assert.Equal(t, hlog.LevelFatal, GetLogLevel("fatal"))
	assert.Equal(t, hlog.LevelInfo, GetLogLevel("verbose"))
}

func TestNewByMode(t *testing.T) {
	c := &Config{Level: "debug"}
	l := NewByMode("prod", c)
	assert.NoError(t, l.Sync())

	c.File = filepath.Join(t.TempDir(), "hstore.log")
	l = NewByMode("dev", c)
	assert.NoError(t, l.Sync())
	assert.NoFileExists(t, c.File)
}

func TestFileLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hstore.log")
	l := New(&Config{File: file, Level: "info", MaxSize: 1, MaxAge: 1, MaxBackups: 1})

	l.Infof("[hstore.set] bucket: %s", "user:1")
	l.Debugf("hidden")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[hstore.set] bucket: user:1")
	assert.NotContains(t, string(data), "hidden")
}
