package config

// DefaultMaxHistoryItems caps the recency log when nothing else is configured.
const DefaultMaxHistoryItems = 10

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Key:      "toolmarks.history",
			MaxItems: DefaultMaxHistoryItems,
		},
		Favorites: FavoritesConfig{
			Key: "toolmarks.favorites",
		},
		Storage: StorageConfig{
			Backend:        "sqlite",
			Path:           "~/.config/toolmarks",
			SQLiteFile:     "toolmarks.db",
			FileDir:        "state",
			RedisURL:       "",
			RedisPrefix:    "toolmarks:",
			S3Bucket:       "",
			S3Region:       "us-east-1",
			S3Prefix:       "toolmarks",
			WriteTimeoutMs: 2000,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			File:   "",
		},
	}
}
