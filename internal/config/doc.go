// Package config resolves scrape settings from defaults, an optional
// YAML config file, and LABS_EVENTS_* environment variables (including
// a local .env file). Command-line flags layer on top in the CLI.
package config
