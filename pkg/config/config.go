package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Dataset struct {
		Path        string `yaml:"path"`
		DateColumn  string `yaml:"date_column"`
		YieldColumn string `yaml:"yield_column"`
	} `yaml:"dataset"`
	Treasury struct {
		BaseURL  string        `yaml:"base_url"`
		Symbol   string        `yaml:"symbol"`
		Scale    float64       `yaml:"scale"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"treasury"`
	Mortgage struct {
		APIURL    string        `yaml:"api_url"`
		Product   string        `yaml:"product"`
		PageURL   string        `yaml:"page_url"`
		PageLabel string        `yaml:"page_label"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"mortgage"`
	Poller struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"poller"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"rate_limit"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("DATASET_PATH"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("TREASURY_SYMBOL"); v != "" {
		c.Treasury.Symbol = v
	}
	if v := os.Getenv("MORTGAGE_API_URL"); v != "" {
		c.Mortgage.APIURL = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Dataset.DateColumn == "" {
		c.Dataset.DateColumn = "Date"
	}
	if c.Dataset.YieldColumn == "" {
		c.Dataset.YieldColumn = "10Y_Treasury_Yield"
	}
	if c.Treasury.Symbol == "" {
		c.Treasury.Symbol = "^TNX"
	}
	if c.Treasury.Scale == 0 {
		c.Treasury.Scale = 1
	}
	if c.Treasury.CacheTTL == 0 {
		c.Treasury.CacheTTL = time.Hour
	}
	if c.Mortgage.Product == "" {
		c.Mortgage.Product = "30-year-fixed"
	}
	if c.Mortgage.PageLabel == "" {
		c.Mortgage.PageLabel = "30-year fixed"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Treasury.BaseURL == "" {
		return fmt.Errorf("treasury.base_url is required")
	}
	if c.Mortgage.APIURL == "" && c.Mortgage.PageURL == "" {
		return fmt.Errorf("mortgage.api_url or mortgage.page_url is required")
	}
	return nil
}
