package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed clipfiles.yaml
var defaultConfig []byte

type CacheConfig struct {
	Enabled    bool `koanf:"enabled" yaml:"enabled"`
	TTLSeconds int  `koanf:"ttl_seconds" yaml:"ttl_seconds"`
}

type Config struct {
	Delimiter  string      `koanf:"delimiter" yaml:"delimiter"`
	MaxEntries int         `koanf:"max_entries" yaml:"max_entries"`
	Humanize   bool        `koanf:"humanize" yaml:"humanize"`
	Output     string      `koanf:"output" yaml:"output"`
	Cache      CacheConfig `koanf:"cache" yaml:"cache"`

	// flag-only, never read from the config file
	ShowSettings bool `koanf:"-" yaml:"-"`
	NulSeparated bool `koanf:"-" yaml:"-"`
	MIME         bool `koanf:"-" yaml:"-"`
	Force        bool `koanf:"-" yaml:"-"`
}

// userConfigPath is the optional override file merged over the embedded
// defaults.
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "clipfiles", "clipfiles.yaml")
}

func ensureConfig() (Config, error) {
	var c Config

	// "." as the key path delimiter
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return Config{}, err
	}

	if path := userConfigPath(); fileExists(path) {
		logger.Debug("merging user config", "path", path)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}

	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
