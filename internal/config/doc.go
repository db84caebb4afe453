// Package config loads the optional jump settings file (config.toml).
package config
