package config

import "time"

// Config holds runtime settings for the closet client.
//
// Fields:
//   - BaseURL: closet API base, e.g. http://localhost:3001/closet.
//   - RequestTimeout: per-request timeout; zero disables it.
//   - NoticeDuration: how long success notices stay visible.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	NoticeDuration time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3001/closet"
	c.RequestTimeout = 0
	c.NoticeDuration = 3 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
