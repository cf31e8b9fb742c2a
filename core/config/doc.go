// File: doc.go
// Title: Package Documentation for Configuration
// Description: Package-level documentation for the dynstr configuration
//              package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

// Package config loads settings for the dynstr command-line tools from TOML
// or YAML files, with DYNSTR_* environment variables taking precedence over
// file values.
//
// The format is detected from the file extension (.toml, .yaml, .yml);
// anything else is treated as TOML. Settings that a file does not mention
// keep their defaults, and the merged result is validated before use.
//
//	[buffer]
//	initial_capacity = 64
//	max_read_size = 4096
//
//	[log]
//	level = "debug"
//	format = "console"
//
// The buffer package's 32 MiB growth ceiling is a compile-time constant and
// intentionally not configurable; config governs only the outer tooling.
package config
