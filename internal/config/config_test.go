package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Decode(New(""))
	require.NoError(t, err)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 120, c.Window.FPS)
	assert.InDelta(t, 0.75, c.Player.HoldingSpeedMult, 1e-6)
	assert.InDelta(t, 3.0, c.Player.Reach, 1e-6)
	assert.True(t, c.Audio.Enabled)
	assert.Equal(t, "assets/office.yaml", c.Office.Layout)
	assert.Zero(t, c.Game.Seed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitoffice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  fps: 60\nplayer:\n  reach: 2.5\ngame:\n  seed: 42\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, c.Window.FPS)
	assert.Equal(t, 720, c.Window.Height)
	assert.InDelta(t, 2.5, c.Player.Reach, 1e-6)
	assert.Equal(t, int64(42), c.Game.Seed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GITOFFICE_AUDIO_ENABLED", "false")
	c, err := Decode(New(""))
	require.NoError(t, err)
	assert.False(t, c.Audio.Enabled)
}

func TestValidate(t *testing.T) {
	c, err := Decode(New(""))
	require.NoError(t, err)

	c.Player.HoldingSpeedMult = 2
	c.Window.FPS = 0
	err = c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "holding_speed_mult")
	assert.Contains(t, err.Error(), "window.fps")
}
