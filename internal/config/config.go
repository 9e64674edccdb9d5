package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Engine    EngineConfig    `yaml:"engine"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig is the optional plan-archive database. Leave host empty to
// run without archival.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// CacheConfig controls the two plan-cache tiers: an in-process TTL tier and
// a durable SQLite tier shared between processes. An empty path disables the
// durable tier.
type CacheConfig struct {
	Path       string `yaml:"path"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// TailscaleConfig optionally serves the API over a tailnet instead of a
// plain listener.
type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
	AuthKey  string `yaml:"auth_key"`
}

type EngineConfig struct {
	CatalogPath string `yaml:"catalog_path"` // empty means the embedded catalog
	MinSafePool int    `yaml:"min_safe_pool"`
}

// Enabled reports whether the plan archive is configured at all.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix PLANFORGE_ and underscore-separated paths:
//
//	PLANFORGE_SERVER_HOST, PLANFORGE_SERVER_PORT,
//	PLANFORGE_DB_HOST, PLANFORGE_DB_PORT, PLANFORGE_DB_NAME,
//	PLANFORGE_DB_USER, PLANFORGE_DB_PASSWORD, PLANFORGE_DB_SSLMODE,
//	PLANFORGE_CACHE_PATH, PLANFORGE_CACHE_TTL_MINUTES,
//	PLANFORGE_AUTH_API_KEY,
//	PLANFORGE_TS_ENABLED, PLANFORGE_TS_HOSTNAME, PLANFORGE_TS_STATE_DIR,
//	PLANFORGE_TS_AUTHKEY,
//	PLANFORGE_ENGINE_CATALOG_PATH, PLANFORGE_ENGINE_MIN_SAFE_POOL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANFORGE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PLANFORGE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("PLANFORGE_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("PLANFORGE_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("PLANFORGE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PLANFORGE_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("PLANFORGE_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("PLANFORGE_CACHE_TTL_MINUTES"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLMinutes = ttl
		}
	}
	if v := os.Getenv("PLANFORGE_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("PLANFORGE_TS_ENABLED"); v != "" {
		cfg.Tailscale.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("PLANFORGE_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("PLANFORGE_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("PLANFORGE_TS_AUTHKEY"); v != "" {
		cfg.Tailscale.AuthKey = v
	}
	if v := os.Getenv("PLANFORGE_ENGINE_CATALOG_PATH"); v != "" {
		cfg.Engine.CatalogPath = v
	}
	if v := os.Getenv("PLANFORGE_ENGINE_MIN_SAFE_POOL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MinSafePool = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "planforge"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required when database.host is set")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required when database.host is set")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required when database.host is set")
		}
	}
	if c.Cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must not be negative")
	}
	return nil
}
