// Package config handles configuration loading, parsing, and validation
// from a config file and environment variables. Environment variables use the
// CATALOG_ prefix and take precedence over file values.
package config
