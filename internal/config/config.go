// Package config loads connection profiles from YAML files and the
// environment. A profile is the declarative form of a connection
// descriptor: driver tag, DSN, and free-form extras such as an explicit
// dialect_name override.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override file
// settings, e.g. DIALECTA_DEFAULT_PROFILE or DIALECTA_PROFILES__MAIN__DSN.
const EnvPrefix = "DIALECTA_"

// Profile describes one named connection target.
type Profile struct {
	Driver string            `koanf:"driver"`
	DSN    string            `koanf:"dsn"`
	Extra  map[string]string `koanf:"extra"`
}

// Config is the root configuration document.
type Config struct {
	DefaultProfile string             `koanf:"default_profile"`
	Profiles       map[string]Profile `koanf:"profiles"`
}

var defaults = map[string]interface{}{
	"default_profile": "default",
}

// Load reads configuration from the given YAML file, then applies
// environment overrides. A missing path is not an error; the environment
// alone can supply a complete configuration.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	// DIALECTA_PROFILES__MAIN__DRIVER maps to profiles.main.driver; the
	// double underscore keeps single underscores usable inside key names.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadFromDir looks for dialecta.yaml or dialecta.yml in dir and loads it.
// Returns (nil, nil) when neither exists.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"dialecta.yaml", "dialecta.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, nil
}

// Profile returns the named profile, or the default profile when name is
// empty.
func (c *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}
