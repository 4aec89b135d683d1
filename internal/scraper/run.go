package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/pfrederiksen/labs-events/internal/event"
	"github.com/pfrederiksen/labs-events/internal/logger"
	"github.com/pfrederiksen/labs-events/internal/storage"
)

// Options configures one merge-scrape run
type Options struct {
	OutputPath string
	Game       string
	Format     string // optional format tag, attached only when non-empty
}

// Summary reports how a run's records were assembled
type Summary struct {
	Cached  int // records reused from the previous snapshot
	Fetched int // records assembled from fresh standings fetches
	Total   int
}

// Run executes the full merge-scrape pipeline: load the previous
// snapshot, fetch and parse the homepage listing, assemble one record
// per tournament division (reusing cached records unchanged, fetching
// player counts for the rest), sort newest first, and overwrite the
// snapshot.
//
// A listing fetch or parse failure is fatal and nothing is written.
// Per-division standings failures are absorbed by FetchPlayerCount.
// Cached records are copied through verbatim, so a previously fetched
// player count is never refreshed; drop the record from the snapshot
// to force a re-fetch. Standings fetches are paced by the scraper's
// rate limiter; cache hits incur no delay.
func (s *Scraper) Run(ctx context.Context, store *storage.Store, opts Options) ([]*event.Event, Summary, error) {
	defer s.client.CloseIdleConnections()

	existing := store.Load(opts.OutputPath)
	logger.Info("loaded existing snapshot", logger.Fields{
		"path":   opts.OutputPath,
		"events": len(existing),
	})

	html, err := s.Fetch(ctx, s.baseURL)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("fetching listing page: %w", err)
	}

	listings, err := ParseListing(strings.NewReader(html))
	if err != nil {
		return nil, Summary{}, fmt.Errorf("parsing listing page: %w", err)
	}
	logger.Info("parsed tournament listing", logger.Fields{
		"url":         s.baseURL,
		"tournaments": len(listings),
	})

	events := make([]*event.Event, 0, len(listings)*len(event.Divisions))
	var summary Summary

	for _, item := range listings {
		logger.Debug("processing tournament", logger.Fields{
			"tournament_id": item.TournamentID,
			"name":          item.Name,
		})

		for _, division := range event.Divisions {
			id := event.EventID(item.TournamentID, division)

			if cached, ok := existing[id]; ok {
				events = append(events, cached)
				summary.Cached++
				continue
			}

			if err := s.limiter.Wait(ctx); err != nil {
				return nil, Summary{}, fmt.Errorf("waiting to fetch: %w", err)
			}
			count := s.FetchPlayerCount(ctx, item.TournamentID, division)

			var date *string
			if item.Date != "" {
				d := item.Date
				date = &d
			}

			events = append(events, event.New(
				item.TournamentID, item.Name, date,
				opts.Game, division, count, opts.Format,
			))
			summary.Fetched++
		}
	}
	summary.Total = len(events)

	event.SortEvents(events)

	if err := store.Save(opts.OutputPath, events); err != nil {
		return nil, Summary{}, fmt.Errorf("saving snapshot: %w", err)
	}

	return events, summary, nil
}
