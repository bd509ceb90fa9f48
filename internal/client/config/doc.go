// Package config loads runtime configuration for the closet client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   closet API base URL
//	-t int      request timeout in seconds (0 = none)
//	-n int      notice display time in seconds
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//
// # File schema
//
// Durations use timex.Duration, so values are strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "http://localhost:3001/closet",
//	  "request_timeout": "10s",
//	  "notice_duration": "3s",
//	  "log_level": "debug",
//	  "log_format": "zap"
//	}
//
// Keys missing from the file keep their default values.
package config
