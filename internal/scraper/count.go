package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pfrederiksen/labs-events/internal/logger"
)

// playerCountPattern matches attendance text like "2117 players" on a
// standings page
var playerCountPattern = regexp.MustCompile(`(\d+)\s+players`)

// ExtractPlayerCount returns the first attendee count found in
// standings page text, or nil if the page contains none.
func ExtractPlayerCount(html string) *int {
	matches := playerCountPattern.FindStringSubmatch(html)
	if matches == nil {
		return nil
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil
	}
	return &n
}

// StandingsURL builds the standings page URL for a tournament division.
func (s *Scraper) StandingsURL(tournamentID, division string) string {
	return fmt.Sprintf("%s%s/%s/standings", s.baseURL, tournamentID, division)
}

// FetchPlayerCount fetches the standings page for a tournament
// division and extracts its player count. Any fetch or extraction
// failure for this one page is absorbed: it is logged as a warning
// and reported as nil so a single missing standings page never aborts
// a whole run.
func (s *Scraper) FetchPlayerCount(ctx context.Context, tournamentID, division string) *int {
	url := s.StandingsURL(tournamentID, division)

	html, err := s.Fetch(ctx, url)
	if err != nil {
		logger.Warn("could not fetch player count", logger.Fields{
			"tournament_id": tournamentID,
			"division":      division,
			"url":           url,
		}, err)
		return nil
	}

	return ExtractPlayerCount(html)
}
