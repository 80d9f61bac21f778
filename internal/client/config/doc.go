// Package config loads runtime configuration for the agenda CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. AGENDA_* environment variables, plus a ./.env file when present.
//  3. Optional JSON file selected via -c/-config or $AGENDA_CONFIG.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the agenda gRPC server
//	-t int      per-request timeout (seconds)
//	-n int      contacts per page
//	-f          reload a contact from the server before editing it
//	-v          verbose (debug) logging
//	-o          offline demo mode with in-memory data
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "localhost:50051",
//	  "request_timeout": "5s",
//	  "page_size": 5,
//	  "fresh_edits": false,
//	  "verbose": false,
//	  "offline": false,
//	  "log_level": "warn"
//	}
package config
