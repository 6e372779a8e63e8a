package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seasonfx/internal/controls"
	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/prefs"
	"seasonfx/internal/season"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"winter", "winter"},
		{"Winter", "winter"},
		{"  AUTUMN ", "autumn"},
		{"None", "none"},
		{"auto", "auto"},
	}
	for _, tt := range tests {
		got, err := previewToken(tt.in)
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}

	_, err := previewToken("monsoon")
	assert.ErrorIs(t, err, season.ErrUnknownToken)
}

func TestMixedCaseModePreviews(t *testing.T) {
	token, err := previewToken("Winter")
	require.NoError(t, err)

	tables := particle.DefaultTables()
	sys := particle.NewSystem(tables, rand.New(rand.NewSource(1)))
	sys.SetBounds(800, 600)

	store := prefs.NewMemoryStore()
	clock := season.NewFixedClock(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
	b := controls.NewBinding(controls.DefaultTokens(), store, clock, sys)

	require.Equal(t, season.Spring, b.Init())
	assert.Equal(t, season.Winter, b.Preview(token))

	assert.Equal(t, season.Winter, sys.Mode())
	assert.Len(t, sys.Particles(), tables.Profiles[season.Winter].Particles)
	assert.Len(t, sys.Orbs(), tables.Profiles[season.Winter].Orbs)

	active, ok := b.ActiveToken()
	require.True(t, ok)
	assert.Equal(t, "winter", active)

	_, stored := store.Read(season.PreferenceKey)
	assert.False(t, stored, "a preview is not persisted")
}

func TestModeSetThenGet(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, nil, 0644))
	opts := Options{ConfigPath: configPath, PrefsPath: filepath.Join(dir, "prefs.toml")}

	var out bytes.Buffer
	cmd := modeCmd(&opts)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"set", "Winter"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "stored winter (now winter)")

	out.Reset()
	cmd = modeCmd(&opts)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"get"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "preference: winter")
	assert.Contains(t, out.String(), "keys:       site_fx_mode")

	cmd = modeCmd(&opts)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"set", "monsoon"})
	assert.Error(t, cmd.Execute())
}
