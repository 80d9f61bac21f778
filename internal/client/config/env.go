package config

import "github.com/dmitrijs2005/agenda/internal/envx"

func parseEnv(cfg *Config) {
	envx.LoadDotEnv()

	envx.String(&cfg.ServerEndpointAddr, "SERVER_ADDR")
	envx.Duration(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
	envx.Int(&cfg.PageSize, "PAGE_SIZE")
	envx.Bool(&cfg.FreshEdits, "FRESH_EDIT")
	envx.Bool(&cfg.Verbose, "VERBOSE")
	envx.Bool(&cfg.Offline, "OFFLINE")
	envx.String(&cfg.LogLevel, "LOG_LEVEL")
}
