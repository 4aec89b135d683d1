package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/labs-events/internal/config"
	"github.com/pfrederiksen/labs-events/internal/logger"
	"github.com/pfrederiksen/labs-events/internal/scraper"
	"github.com/pfrederiksen/labs-events/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagURL     string
	flagOutput  string
	flagGame    string
	flagFormat  string
	flagDelay   time.Duration
	flagTimeout time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command. Running it performs one
// merge-scrape: fetch the Labs listing, reuse previously scraped
// records, fetch player counts for new ones, and overwrite the
// snapshot file.
func NewRootCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "labs-events",
		Short: "Scrape Labs tournament events into a JSON snapshot",
		Long: `A CLI tool to scrape tournament event metadata from the Labs platform.
Each tournament expands into one record per division (JR, SR, MA) with its
player count. Records already present in the output file are reused without
refetching, so repeated runs only fetch what is new.`,
		SilenceUsage: true,
		RunE:         runScrape,
	}

	// Define flags; defaults may be overridden by a config file or
	// LABS_EVENTS_* environment variables
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.Flags().StringVar(&flagURL, "url", defaults.URL, "Base URL for the Labs platform")
	cmd.Flags().StringVar(&flagOutput, "output", defaults.Output, "Output JSON file path")
	cmd.Flags().StringVar(&flagGame, "game", defaults.Game, "Game tag to assign to events")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Format tag to assign to events (optional)")
	cmd.Flags().DurationVar(&flagDelay, "delay", defaults.Delay, "Pacing delay between standings fetches")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", defaults.Timeout, "HTTP request timeout")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newRateCmd())

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Explicit flags win over config file and environment
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = flagURL
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("game") {
		cfg.Game = flagGame
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("delay") {
		cfg.Delay = flagDelay
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	sc := scraper.New(cfg.URL, cfg.Delay, cfg.Timeout)
	store := storage.New()

	events, summary, err := sc.Run(cmd.Context(), store, scraper.Options{
		OutputPath: cfg.Output,
		Game:       cfg.Game,
		Format:     cfg.Format,
	})
	if err != nil {
		return fmt.Errorf("scraping events: %w", err)
	}

	writeSummary(cmd.OutOrStdout(), cfg.Output, len(events), summary)
	return nil
}

// writeSummary prints the cached/fetched tallies for a finished run
func writeSummary(w io.Writer, output string, total int, summary scraper.Summary) {
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Cached events: %d\n", summary.Cached)
	fmt.Fprintf(w, "  Newly fetched: %d\n", summary.Fetched)
	fmt.Fprintf(w, "  Total events:  %d\n", summary.Total)
	fmt.Fprintf(w, "Wrote %d events to %s\n", total, output)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
