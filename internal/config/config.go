package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "jobboard"
	ConfigFileName = "config.json"
	StorageDirName = "storage"
)

// Data sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceURL      = "url"
	SourcePostgres = "postgres"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config selects where jobs come from and where bookmarks are kept.
type Config struct {
	DataSource  string `json:"data_source"`
	DataPath    string `json:"data_path,omitempty"`
	DataURL     string `json:"data_url,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	LatencyMS   int    `json:"latency_ms"`
	Proxy       string `json:"proxy,omitempty"`

	Storage     string `json:"storage"`
	StorageDir  string `json:"storage_dir,omitempty"`
	RedisURL    string `json:"redis_url,omitempty"`
	RedisPrefix string `json:"redis_prefix,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		DataSource: SourceEmbedded,
		LatencyMS:  500,
		Storage:    StorageFile,
		RedisURL:   "redis://localhost:6379/0",
	}
}

func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("JOBBOARD_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file (missing is fine) and applies JOBBOARD_*
// environment overrides on top.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DataSource = envString("JOBBOARD_DATA_SOURCE", cfg.DataSource)
	cfg.DataPath = envString("JOBBOARD_DATA_PATH", cfg.DataPath)
	cfg.DataURL = envString("JOBBOARD_DATA_URL", cfg.DataURL)
	cfg.DatabaseURL = envString("JOBBOARD_DATABASE_URL", cfg.DatabaseURL)
	cfg.LatencyMS = envInt("JOBBOARD_LATENCY_MS", cfg.LatencyMS)
	cfg.Proxy = envString("JOBBOARD_PROXY", cfg.Proxy)
	cfg.Storage = envString("JOBBOARD_STORAGE", cfg.Storage)
	cfg.StorageDir = envString("JOBBOARD_STORAGE_DIR", cfg.StorageDir)
	cfg.RedisURL = envString("JOBBOARD_REDIS_URL", cfg.RedisURL)
	cfg.RedisPrefix = envString("JOBBOARD_REDIS_PREFIX", cfg.RedisPrefix)
}

// Validate checks that the selected source and storage have what they need.
func (c Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}
	return c.ValidateStorage()
}

// ValidateSource checks the data source settings. Commands call it before
// loading the catalog, so a bad source does not break unrelated commands.
func (c Config) ValidateSource() error {
	switch c.DataSource {
	case SourceEmbedded:
	case SourceFile:
		if strings.TrimSpace(c.DataPath) == "" {
			return fmt.Errorf("data_source %q requires data_path", c.DataSource)
		}
	case SourceURL:
		if strings.TrimSpace(c.DataURL) == "" {
			return fmt.Errorf("data_source %q requires data_url", c.DataSource)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("data_source %q requires database_url", c.DataSource)
		}
	default:
		return fmt.Errorf("unknown data_source: %s", c.DataSource)
	}
	if c.LatencyMS < 0 {
		return fmt.Errorf("latency_ms must be >= 0")
	}
	return nil
}

// ValidateStorage checks the bookmark storage settings.
func (c Config) ValidateStorage() error {
	switch c.Storage {
	case StorageFile, StorageMemory:
	case StorageRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("storage %q requires redis_url", c.Storage)
		}
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}
	return nil
}

// ResolveStorageDir returns StorageDir or <configDir>/storage.
func (c Config) ResolveStorageDir(configDir string) string {
	if strings.TrimSpace(c.StorageDir) != "" {
		return c.StorageDir
	}
	return filepath.Join(configDir, StorageDirName)
}

// Init writes a default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	storageDir := filepath.Join(dir, StorageDirName)
	if _, err := os.Stat(storageDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(storageDir, 0o755); err != nil {
			return created, err
		}
		created = append(created, storageDir)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
