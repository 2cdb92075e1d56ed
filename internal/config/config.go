// Package config handles configuration loading for the hook handler.
//
// Settings come from an optional TOML file with environment variable
// overrides on top, read once at startup. The resulting Config is
// immutable for the process lifetime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output modes.
const (
	ModeSound = "sound"
	ModeVoice = "voice"
	ModeBoth  = "both"
)

// Default configuration values.
const (
	DefaultMode      = ModeVoice
	DefaultSoundType = "beeps"
	DefaultVoiceName = "Kyoko"
	DefaultLanguage  = "ja_JP"
	DefaultRate      = 200
	DefaultVolume    = 1.0
	DefaultLogSizeMB = 10
)

// Config represents the full koe configuration.
type Config struct {
	Mode   string       `toml:"mode"` // sound, voice, or both
	Sound  SoundConfig  `toml:"sound"`
	Voice  VoiceConfig  `toml:"voice"`
	Notify NotifyConfig `toml:"notify"`
	Log    LogConfig    `toml:"log"`

	// Debug enables verbose logging.
	Debug bool `toml:"debug"`
	// Test runs matching and resolution without invoking any backend.
	Test bool `toml:"test"`
}

// SoundConfig holds sound playback settings.
type SoundConfig struct {
	Dir      string  `toml:"dir"`      // search root for sound files
	Type     string  `toml:"type"`     // category subdirectory under Dir
	Volume   float64 `toml:"volume"`   // 0.0 to 1.0
	Fallback bool    `toml:"fallback"` // beep when nothing else works
	Blocking bool    `toml:"blocking"` // wait for the player process
}

// VoiceConfig holds speech synthesis settings.
type VoiceConfig struct {
	Name     string `toml:"name"`     // synthesizer voice identity
	Language string `toml:"language"` // language tag, e.g. ja_JP
	Rate     int    `toml:"rate"`     // words per minute
	Async    bool   `toml:"async"`    // fire-and-forget speech
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File      string `toml:"file"`        // optional rotating log file
	MaxSizeMB int    `toml:"max_size_mb"` // rotation threshold
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Mode: DefaultMode,
		Sound: SoundConfig{
			Dir:      filepath.Join(DataPath(), "sounds"),
			Type:     DefaultSoundType,
			Volume:   DefaultVolume,
			Fallback: true,
			Blocking: false,
		},
		Voice: VoiceConfig{
			Name:     DefaultVoiceName,
			Language: DefaultLanguage,
			Rate:     DefaultRate,
			Async:    true,
		},
		Notify: NotifyConfig{Enabled: false},
		Log: LogConfig{
			File:      "",
			MaxSizeMB: DefaultLogSizeMB,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "koe", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "koe")
}

// AuditPath returns the path to the event audit JSONL file.
func AuditPath() string {
	return filepath.Join(DataPath(), "events.jsonl")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}

// Load reads configuration from the specified path with environment
// overrides applied. If path is empty, the default config path is
// used. A missing file is not an error: defaults plus environment win.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

// applyEnv overrides config fields from the environment. KOE_* takes
// precedence over the legacy CLAUDE_HOOK_* names kept for users
// migrating from the original hook script.
func (c *Config) applyEnv() {
	if v := envFirst("KOE_MODE", "CLAUDE_HOOK_MODE"); v != "" {
		c.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("KOE_SOUND_DIR"); v != "" {
		c.Sound.Dir = v
	}
	if v := envFirst("KOE_SOUND_TYPE", "CLAUDE_HOOK_SOUND_TYPE"); v != "" {
		c.Sound.Type = v
	}
	if v := os.Getenv("KOE_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Sound.Volume = f
		}
	}
	if v := os.Getenv("KOE_FALLBACK"); v != "" {
		c.Sound.Fallback = isTrue(v)
	}
	if v := envFirst("KOE_VOICE", "CLAUDE_HOOK_VOICE"); v != "" {
		c.Voice.Name = v
	}
	if v := os.Getenv("KOE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Voice.Rate = n
		}
	}
	if v := envFirst("KOE_DEBUG", "CLAUDE_HOOK_DEBUG"); v != "" {
		c.Debug = isTrue(v)
	}
	if v := envFirst("KOE_TEST", "CLAUDE_HOOK_TEST"); v != "" {
		c.Test = isTrue(v)
	}
}

// clamp forces out-of-range values back to usable ones rather than
// rejecting the configuration.
func (c *Config) clamp() {
	switch c.Mode {
	case ModeSound, ModeVoice, ModeBoth:
	default:
		c.Mode = DefaultMode
	}
	if c.Sound.Volume < 0 {
		c.Sound.Volume = 0
	}
	if c.Sound.Volume > 1 {
		c.Sound.Volume = 1
	}
	if c.Voice.Rate <= 0 {
		c.Voice.Rate = DefaultRate
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = DefaultLogSizeMB
	}
}

// Save writes the configuration to the specified path, creating parent
// directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func envFirst(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func isTrue(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
