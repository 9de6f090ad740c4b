package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/toolmarks/config.yaml"

// Config holds all toolmarks configuration.
type Config struct {
	History   HistoryConfig   `yaml:"history"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type HistoryConfig struct {
	Key      string `yaml:"key"`
	MaxItems int    `yaml:"max_items"`
}

type FavoritesConfig struct {
	Key string `yaml:"key"`
}

type StorageConfig struct {
	Backend        string `yaml:"backend"`
	Path           string `yaml:"path"`
	SQLiteFile     string `yaml:"sqlite_file"`
	FileDir        string `yaml:"file_dir"`
	RedisURL       string `yaml:"redis_url"`
	RedisPrefix    string `yaml:"redis_prefix"`
	S3Bucket       string `yaml:"s3_bucket"`
	S3Region       string `yaml:"s3_region"`
	S3Prefix       string `yaml:"s3_prefix"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.History.MaxItems <= 0 {
		cfg.History.MaxItems = DefaultMaxHistoryItems
	}

	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// ResolvePath joins name onto the storage root, expanding ~. Absolute names
// are returned unchanged.
func (s StorageConfig) ResolvePath(name string) (string, error) {
	if filepath.IsAbs(name) || name == ":memory:" {
		return name, nil
	}
	root, err := ExpandPath(s.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}
