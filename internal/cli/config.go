package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/fling/pkg/deck"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when --config is not given.
const DefaultConfigPath = "fling.yaml"

// Config is the fling.yaml file.
type Config struct {
	ViewportWidth float64     `yaml:"viewport_width" json:"viewport_width"`
	LogLevel      string      `yaml:"log_level" json:"log_level"`
	Store         StoreConfig `yaml:"store" json:"store"`
	HTTP          HTTPConfig  `yaml:"http" json:"http"`
	Metrics       bool        `yaml:"metrics" json:"metrics"`
	Cards         []deck.Card `yaml:"cards" json:"cards"`
}

// StoreConfig selects where swipes are journaled.
type StoreConfig struct {
	Backend string      `yaml:"backend" json:"backend"` // memory, file or redis
	Path    string      `yaml:"path" json:"path"`
	Redis   RedisConfig `yaml:"redis" json:"redis"`
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
	TTL      string `yaml:"ttl" json:"ttl"`
}

// HTTPConfig configures `fling serve`.
type HTTPConfig struct {
	Port int `yaml:"port" json:"port"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Store:    StoreConfig{Backend: "file"},
		HTTP:     HTTPConfig{Port: 8080},
		Metrics:  true,
	}
}

// LoadConfig reads a YAML or JSON config file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if cfg.ViewportWidth < 0 {
		return cfg, fmt.Errorf("invalid config %s: negative viewport_width", path)
	}
	return cfg, nil
}

// DeckCards returns the configured cards, or a small sample deck.
func (c Config) DeckCards() []deck.Card {
	if len(c.Cards) > 0 {
		return c.Cards
	}
	return []deck.Card{
		{ID: "ada", Title: "Ada, 36, compilers"},
		{ID: "grace", Title: "Grace, 41, navy"},
		{ID: "alan", Title: "Alan, 29, cryptography"},
		{ID: "barbara", Title: "Barbara, 33, CLU"},
		{ID: "ken", Title: "Ken, 45, unix"},
	}
}
