package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kamusis/certview/internal/archive"
)

// Config is the in-memory representation of ~/.certview/certview.yaml.
type Config struct {
	DataPath     string         `yaml:"data_path"`
	Lang         string         `yaml:"lang,omitempty"`
	Layout       string         `yaml:"layout,omitempty"`
	Sort         string         `yaml:"sort,omitempty"`
	ArchiveDir   string         `yaml:"archive_dir,omitempty"`
	DomainRules  []archive.Rule `yaml:"domain_rules,omitempty"`
	TechKeywords []string       `yaml:"tech_keywords,omitempty"`
}

// Dir returns the absolute path to ~/.certview/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".certview"), nil
}

// ConfigPath returns the absolute path to ~/.certview/certview.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "certview.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by certview init.
func DefaultConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataPath:     filepath.Join(dir, "learning-data.json"),
		Lang:         "en",
		Layout:       "list",
		Sort:         "date-desc",
		ArchiveDir:   "archived",
		DomainRules:  archive.DefaultRules(),
		TechKeywords: archive.DefaultTechKeywords(),
	}, nil
}

// Load reads and parses ~/.certview/certview.yaml, then applies environment
// overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing config file yields the
// defaults instead of an error.
func LoadOrDefault() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg, err := DefaultConfig()
		if err != nil {
			return nil, err
		}
		if err := cfg.resolve(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load()
}

// resolve applies CERTVIEW_* overrides and expands ~ in paths.
func (c *Config) resolve() error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"CERTVIEW_DATA", &c.DataPath},
		{"CERTVIEW_LANG", &c.Lang},
	}
	for _, o := range overrides {
		v, err := GetConfigValue(o.key)
		if err != nil {
			return err
		}
		if v != "" {
			*o.dst = v
		}
	}

	var err error
	if c.DataPath, err = ExpandPath(c.DataPath); err != nil {
		return err
	}
	if c.ArchiveDir, err = ExpandPath(c.ArchiveDir); err != nil {
		return err
	}
	return nil
}

// Save marshals cfg and writes it to ~/.certview/certview.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
