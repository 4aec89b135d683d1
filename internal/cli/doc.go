// Package cli implements the labs-events command-line interface.
//
// The root command runs one merge-scrape against the Labs platform and
// prints a cached/fetched summary; the rate subcommand evaluates the
// result-rate formula table for a single win/loss/tie record.
package cli
