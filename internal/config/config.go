// Package config loads service configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig enables the Redis session store when Addr is set; sessions
// stay in process memory otherwise.
type RedisConfig struct {
	Addr       string   `yaml:"addr"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	SessionTTL Duration `yaml:"session_ttl"`
}

// Duration parses YAML duration strings like "30m" or "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

type LogConfig struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Redis:  RedisConfig{SessionTTL: Duration(24 * time.Hour)},
		Log:    LogConfig{Mode: "dev"},
	}
}

// Load reads configuration in order of precedence: defaults, then the
// YAML file at path (skipped when path is "" or the file is absent), then
// ASSISTANT_* environment variables. A .env file in the working directory
// is loaded first if present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ASSISTANT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ASSISTANT_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("ASSISTANT_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("ASSISTANT_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("ASSISTANT_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("ASSISTANT_SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Redis.SessionTTL = Duration(ttl)
		}
	}
	if v := os.Getenv("ASSISTANT_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
}
