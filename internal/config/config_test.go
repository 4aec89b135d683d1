package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pfrederiksen/labs-events/internal/scraper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.URL != scraper.DefaultBaseURL {
		t.Errorf("URL = %q, want %q", cfg.URL, scraper.DefaultBaseURL)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Game != DefaultGame {
		t.Errorf("Game = %q, want %q", cfg.Game, DefaultGame)
	}
	if cfg.Format != "" {
		t.Errorf("Format = %q, want empty", cfg.Format)
	}
	if cfg.Delay != scraper.DefaultDelay {
		t.Errorf("Delay = %v, want %v", cfg.Delay, scraper.DefaultDelay)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `url: https://labs.example.com/
output: out.json
game: OTHER
delay: 250ms
timeout: 5s
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.URL != "https://labs.example.com/" {
		t.Errorf("URL = %q, want file value", cfg.URL)
	}
	if cfg.Output != "out.json" {
		t.Errorf("Output = %q, want file value", cfg.Output)
	}
	if cfg.Game != "OTHER" {
		t.Errorf("Game = %q, want file value", cfg.Game)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", cfg.Delay)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	// Unset keys keep their defaults
	if cfg.Format != "" {
		t.Errorf("Format = %q, want empty", cfg.Format)
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing config file")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("delay: fast\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for unparsable delay")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: FROM_FILE\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("LABS_EVENTS_GAME", "FROM_ENV")
	t.Setenv("LABS_EVENTS_DELAY", "1s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game != "FROM_ENV" {
		t.Errorf("Game = %q, want env value", cfg.Game)
	}
	if cfg.Delay != time.Second {
		t.Errorf("Delay = %v, want 1s", cfg.Delay)
	}
}

func TestEnvBadDuration(t *testing.T) {
	t.Setenv("LABS_EVENTS_TIMEOUT", "soon")

	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for unparsable LABS_EVENTS_TIMEOUT")
	}
}
