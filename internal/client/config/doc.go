// Package config loads runtime configuration for the PlanWise CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the PlanWise gRPC endpoint
//	-f string   path of the local SQLite database
//	-r int      per-request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "local_database_path": "planwise.db",
//	  "request_timeout": "10s"
//	}
package config
