package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	name, err := cfg.GetString("site.name")
	require.NoError(t, err)
	assert.Equal(t, "Occupational Outlook Handbook", name)

	url, err := cfg.GetString("site.url")
	require.NoError(t, err)
	assert.Equal(t, "http://ooh.gov", url)
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Default().Get("site.owner")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  name: Outlook
map:
  width: 1200
  seed: 99
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Outlook", cfg.Site.Name)
	assert.Equal(t, "http://ooh.gov", cfg.Site.URL)
	assert.Equal(t, 1200.0, cfg.Map.Width)
	assert.Equal(t, 800.0, cfg.Map.Height)
	assert.Equal(t, uint64(99), cfg.Map.Seed)

	w, err := cfg.GetString("map.width")
	require.NoError(t, err)
	assert.Equal(t, "1200", w)
}

func TestLoad_EnvPortOverride(t *testing.T) {
	t.Setenv("APP_PORT", "9191")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("APP_PORT", "")
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  height: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_AvatarMustFitOnHub(t *testing.T) {
	cfg := Default()
	cfg.Map.Height = 800

	cfg.Map.AvatarRadius = 80
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Map.AvatarRadius = 79.5
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AllowRegenerate(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.True(t, Default().Map.AllowRegenerate)

	path := filepath.Join(t.TempDir(), "locked.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  allow_regenerate: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Map.AllowRegenerate)

	v, err := cfg.GetString("map.allow_regenerate")
	require.NoError(t, err)
	assert.Equal(t, "false", v)
}
