/*
Package config manages TOML config for the hunlex tools.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/hunlex/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Dict DictConfig `toml:"dict"`
	Gen  GenConfig  `toml:"gen"`
}

// DictConfig holds dictionary loading options.
type DictConfig struct {
	// Path is the .dic source file.
	Path string `toml:"path"`
	// CachePath is the compiled msgpack cache written/read by -compile.
	CachePath string `toml:"cache_path"`
	// FlagMode selects flag decoding: char, long, num or utf8.
	FlagMode string `toml:"flag_mode"`
	// IgnoreChars are stripped from stems during normalization.
	IgnoreChars string `toml:"ignore_chars"`
	// TurkicCasing switches dotted/dotless I handling on.
	TurkicCasing bool `toml:"turkic_casing"`
}

// GenConfig holds form-generation options.
type GenConfig struct {
	// MaxForms caps the forms printed per stem, 0 for all.
	MaxForms int `toml:"max_forms"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			FlagMode: "char",
		},
		Gen: GenConfig{
			MaxForms: 0,
		},
	}
}

// LoadConfig loads from a TOML file, falling back to defaults on error.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
