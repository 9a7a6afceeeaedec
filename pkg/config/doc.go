// Package config handles configuration management for userenv.
// It layers embedded defaults, a TOML user file, USERENV_* environment
// variables and command-line overrides, in that order.
package config
