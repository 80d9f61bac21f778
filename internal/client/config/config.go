package config

import "time"

// Config holds runtime settings for the agenda CLI.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	PageSize           int
	FreshEdits         bool
	Verbose            bool
	Offline            bool
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:50051"
	c.RequestTimeout = 5 * time.Second
	c.PageSize = 5
	c.FreshEdits = false
	c.Verbose = false
	c.Offline = false
	c.LogLevel = "warn"
}

// EffectiveLogLevel is LogLevel, or "debug" when Verbose is set.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
