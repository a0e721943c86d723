package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveServer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "http://flag:1", resolveServer("http://flag:1", "http://env:2"))
	assert.Equal(t, "http://env:2", resolveServer("", "http://env:2"))
	assert.Equal(t, defaultServer, resolveServer("", ""))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("empty path discards", func(t *testing.T) {
		t.Parallel()
		logger, closeLog, err := newLogger("")
		require.NoError(t, err)
		defer closeLog()
		logger.Info("dropped on the floor")
	})

	t.Run("writes to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "debug.log")
		logger, closeLog, err := newLogger(path)
		require.NoError(t, err)
		logger.Info("hello")
		closeLog()
		assert.FileExists(t, path)
	})

	t.Run("unwritable path is an error", func(t *testing.T) {
		t.Parallel()
		_, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "debug.log"))
		assert.Error(t, err)
	})
}
