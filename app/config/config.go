package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFile    = ".env"
	ConfigFile = "config.yaml"
)

// Config is the application configuration read from config.yaml and the
// BLOG_* environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Views    ViewsConfig    `yaml:"views"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Path      string `yaml:"path" validate:"required_without=InMemory"`
	BackupDir string `yaml:"backup_dir" validate:"required"`
	InMemory  bool   `yaml:"in_memory"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format is "json" for production output or "console" for development
	Format string `yaml:"format" validate:"oneof=json console"`
}

// ViewsConfig points at a template directory; empty uses the built-in
// templates.
type ViewsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:      "data/badger",
			BackupDir: "data/backups",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration from dir. A missing config.yaml or .env is
// not an error; defaults and environment variables still apply.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, EnvFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", EnvFile, err)
	}

	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BLOG_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BLOG_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("BLOG_BACKUP_DIR"); v != "" {
		cfg.Database.BackupDir = v
	}
	if v := os.Getenv("BLOG_DB_IN_MEMORY"); v != "" {
		inMemory, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BLOG_DB_IN_MEMORY: %w", err)
		}
		cfg.Database.InMemory = inMemory
	}
	if v := os.Getenv("BLOG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("BLOG_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("BLOG_VIEWS_DIR"); v != "" {
		cfg.Views.Dir = v
	}
	return nil
}
