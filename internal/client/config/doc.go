// Package config loads runtime configuration for the GophAdmin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the admin API (default http://127.0.0.1:8000/admin)
//	-t int      request timeout in seconds (default 10)
//	-s string   token store file (default gophadmin.db)
//	-l string   log level (default info)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "5s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.com/admin",
//	  "request_timeout": "5s",
//	  "store_path": "/var/lib/gophadmin/token.db",
//	  "log_level": "debug"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
