package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader consults so tests are
// hermetic regardless of the invoking shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KOE_MODE", "KOE_SOUND_DIR", "KOE_SOUND_TYPE", "KOE_VOLUME",
		"KOE_FALLBACK", "KOE_VOICE", "KOE_RATE", "KOE_DEBUG", "KOE_TEST",
		"CLAUDE_HOOK_MODE", "CLAUDE_HOOK_SOUND_TYPE", "CLAUDE_HOOK_VOICE",
		"CLAUDE_HOOK_DEBUG", "CLAUDE_HOOK_TEST",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeVoice, cfg.Mode)
	assert.Equal(t, "beeps", cfg.Sound.Type)
	assert.Equal(t, 1.0, cfg.Sound.Volume)
	assert.True(t, cfg.Sound.Fallback)
	assert.False(t, cfg.Sound.Blocking)
	assert.Equal(t, "Kyoko", cfg.Voice.Name)
	assert.Equal(t, "ja_JP", cfg.Voice.Language)
	assert.Equal(t, 200, cfg.Voice.Rate)
	assert.True(t, cfg.Voice.Async)
	assert.False(t, cfg.Notify.Enabled)
	assert.False(t, cfg.Test)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Mode, cfg.Mode)
	assert.Equal(t, DefaultConfig().Voice.Name, cfg.Voice.Name)
}

func TestLoad_ParsesTOML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
mode = "both"

[sound]
dir = "/opt/koe/sounds"
type = "chimes"
volume = 0.4
fallback = false

[voice]
name = "Otoya"
rate = 180

[notify]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, cfg.Mode)
	assert.Equal(t, "/opt/koe/sounds", cfg.Sound.Dir)
	assert.Equal(t, "chimes", cfg.Sound.Type)
	assert.Equal(t, 0.4, cfg.Sound.Volume)
	assert.False(t, cfg.Sound.Fallback)
	assert.Equal(t, "Otoya", cfg.Voice.Name)
	assert.Equal(t, 180, cfg.Voice.Rate)
	assert.True(t, cfg.Notify.Enabled)
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOE_MODE", "sound")
	t.Setenv("KOE_SOUND_TYPE", "retro")
	t.Setenv("KOE_VOLUME", "0.25")
	t.Setenv("KOE_VOICE", "Otoya")
	t.Setenv("KOE_RATE", "150")
	t.Setenv("KOE_TEST", "true")
	t.Setenv("KOE_FALLBACK", "off")

	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, ModeSound, cfg.Mode)
	assert.Equal(t, "retro", cfg.Sound.Type)
	assert.Equal(t, 0.25, cfg.Sound.Volume)
	assert.Equal(t, "Otoya", cfg.Voice.Name)
	assert.Equal(t, 150, cfg.Voice.Rate)
	assert.True(t, cfg.Test)
	assert.False(t, cfg.Sound.Fallback)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLAUDE_HOOK_MODE", "both")
	t.Setenv("CLAUDE_HOOK_VOICE", "Otoya")
	t.Setenv("CLAUDE_HOOK_TEST", "true")

	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, cfg.Mode)
	assert.Equal(t, "Otoya", cfg.Voice.Name)
	assert.True(t, cfg.Test)
}

func TestLoad_NewEnvWinsOverLegacy(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLAUDE_HOOK_MODE", "sound")
	t.Setenv("KOE_MODE", "both")

	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, cfg.Mode)
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOE_MODE", "loud") // not a real mode
	t.Setenv("KOE_VOLUME", "3.5")
	t.Setenv("KOE_RATE", "-10")

	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultMode, cfg.Mode)
	assert.Equal(t, 1.0, cfg.Sound.Volume)
	assert.Equal(t, DefaultRate, cfg.Voice.Rate)
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Mode = ModeBoth
	cfg.Voice.Rate = 170
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, loaded.Mode)
	assert.Equal(t, 170, loaded.Voice.Rate)
}

func TestPaths_RespectXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	assert.Equal(t, "/tmp/xdg-config/koe/config.toml", ConfigPath())
	assert.Equal(t, "/tmp/xdg-data/koe", DataPath())
	assert.Equal(t, "/tmp/xdg-data/koe/events.jsonl", AuditPath())
}
