// Package config loads, normalizes, and validates mako-sync configuration.
// Settings come from a TOML file (default ~/.config/mako-sync/config.toml,
// or mako-sync.toml in the working directory), with Spotify credentials
// optionally overridden from the environment or a .env file.
package config
