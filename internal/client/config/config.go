package config

import (
	"errors"
	"os"
	"time"
)

// Config holds runtime settings for the PlanWise CLI.
type Config struct {
	ServerEndpointAddr string
	LocalDatabasePath  string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.LocalDatabasePath = "planwise.db"
	c.RequestTimeout = 10 * time.Second
}

// Validate rejects settings the CLI cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerEndpointAddr == "" {
		errs = append(errs, errors.New("server endpoint address is empty"))
	}
	if c.LocalDatabasePath == "" {
		errs = append(errs, errors.New("local database path is empty"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, errors.New("request timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
