package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/agenda/internal/flagx"
	"github.com/dmitrijs2005/agenda/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "false"/0 apart from "absent".
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	PageSize           int            `json:"page_size"`
	FreshEdits         *bool          `json:"fresh_edits"`
	Verbose            *bool          `json:"verbose"`
	Offline            *bool          `json:"offline"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays cfg with the values present in the JSON file named by
// -c/-config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	setBool(&cfg.FreshEdits, jc.FreshEdits)
	setBool(&cfg.Verbose, jc.Verbose)
	setBool(&cfg.Offline, jc.Offline)
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
