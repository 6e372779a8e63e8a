package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelSet(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for in, want := range tests {
		var got LogLevel
		require.NoError(t, got.Set(in), in)
		assert.Equal(t, want, got, in)
	}

	level := LevelInfo
	assert.Error(t, level.Set("loud"))
	assert.Equal(t, LevelInfo, level, "a bad value leaves the level alone")

	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(9).String())
}

func TestRaylibLevel(t *testing.T) {
	tests := []struct {
		raylib int
		want   LogLevel
		ok     bool
	}{
		{0, 0, false},
		{1, LevelDebug, true},
		{2, LevelDebug, true},
		{3, LevelInfo, true},
		{4, LevelWarn, true},
		{5, LevelError, true},
		{6, LevelError, true},
		{7, 0, false},
	}
	for _, tt := range tests {
		got, ok := raylibLevel(tt.raylib)
		assert.Equal(t, tt.ok, ok, "raylib level %d", tt.raylib)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raylib level %d", tt.raylib)
		}
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("custom path must exist", func(t *testing.T) {
		_, err := ResolveConfigPath(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("custom path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		got, err := ResolveConfigPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})
}

func TestResolvePrefsPathCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "prefs.toml")
	got, err := ResolvePrefsPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.DirExists(t, filepath.Dir(path))
}
