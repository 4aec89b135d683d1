package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/labs-events/internal/scraper"
)

const (
	// DefaultOutput is the snapshot filename written when no path is
	// configured
	DefaultOutput = "labs_events.json"

	// DefaultGame is the game tag attached to scraped events
	DefaultGame = "PTCG"

	envPrefix = "LABS_EVENTS_"
)

// Config holds the settings for one scrape run. Values are resolved
// in increasing precedence: built-in defaults, YAML config file,
// LABS_EVENTS_* environment variables (a .env file is honored), then
// command-line flags on top.
type Config struct {
	URL     string
	Output  string
	Game    string
	Format  string
	Delay   time.Duration
	Timeout time.Duration
}

// fileConfig is the YAML shape of a config file. Durations are
// written in time.ParseDuration notation ("100ms", "30s").
type fileConfig struct {
	URL     string `yaml:"url"`
	Output  string `yaml:"output"`
	Game    string `yaml:"game"`
	Format  string `yaml:"format"`
	Delay   string `yaml:"delay"`
	Timeout string `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		URL:     scraper.DefaultBaseURL,
		Output:  DefaultOutput,
		Game:    DefaultGame,
		Delay:   scraper.DefaultDelay,
		Timeout: scraper.DefaultTimeout,
	}
}

// Load resolves the configuration. path names an optional YAML config
// file; an empty path skips the file layer, a named file that cannot
// be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	// Pick up a local .env before reading the environment; a missing
	// .env is not an error
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.URL != "" {
		c.URL = fc.URL
	}
	if fc.Output != "" {
		c.Output = fc.Output
	}
	if fc.Game != "" {
		c.Game = fc.Game
	}
	if fc.Format != "" {
		c.Format = fc.Format
	}
	if fc.Delay != "" {
		d, err := time.ParseDuration(fc.Delay)
		if err != nil {
			return fmt.Errorf("parsing delay in config file: %w", err)
		}
		c.Delay = d
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout in config file: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envPrefix + "URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv(envPrefix + "OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv(envPrefix + "GAME"); v != "" {
		c.Game = v
	}
	if v := os.Getenv(envPrefix + "FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv(envPrefix + "DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %sDELAY: %w", envPrefix, err)
		}
		c.Delay = d
	}
	if v := os.Getenv(envPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %sTIMEOUT: %w", envPrefix, err)
		}
		c.Timeout = d
	}
	return nil
}
