package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/pfrederiksen/labs-events/internal/event"
)

const (
	// DefaultBaseURL is the Labs platform homepage
	DefaultBaseURL = "https://labs.limitlesstcg.com/"

	UserAgent      = "labs-events-cli/1.0 (github.com/pfrederiksen/labs-events)"
	DefaultTimeout = 30 * time.Second

	// DefaultDelay paces consecutive standings fetches
	DefaultDelay = 100 * time.Millisecond

	// listingSelector locates the tournament list on the homepage.
	// Its absence means the page shape has changed.
	listingSelector = "ul.grid"

	// UnknownEventName is the placeholder used when a listing item
	// carries no readable name
	UnknownEventName = "Unknown Event"
)

// ErrNoListing is returned when the homepage markup contains no
// tournament list container at all.
var ErrNoListing = errors.New("no tournament listing found in page")

// Scraper fetches and parses Labs tournament pages. It owns the HTTP
// client shared by all fetches of one run and the rate limiter that
// paces standings requests.
type Scraper struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// New creates a Scraper for the given base URL. The base URL is
// normalized to end with a slash. A non-positive delay disables
// pacing.
func New(baseURL string, delay, timeout time.Duration) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// BaseURL returns the normalized base URL fetches are built from.
func (s *Scraper) BaseURL() string {
	return s.baseURL
}

// Fetch issues a GET for url and returns the response body as text.
// A connection failure or non-OK status is an error; the caller
// decides whether that is fatal.
func (s *Scraper) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// Listing is one tournament entry from the homepage list, in document
// order. Date is the normalized YYYY-MM-DD start date, or empty when
// the listing date could not be parsed.
type Listing struct {
	TournamentID string
	Name         string
	Date         string
}

// ParseListing extracts tournament entries from the homepage markup.
//
// It enumerates the direct children of the single designated list
// container in document order. Items without a direct anchor child or
// with a malformed href are silently skipped; items whose nested
// name/date structure is missing fall back to a placeholder name and
// no date. A document with no list container at all returns
// ErrNoListing.
func ParseListing(r io.Reader) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	grid := doc.Find(listingSelector).First()
	if grid.Length() == 0 {
		return nil, ErrNoListing
	}

	listings := make([]Listing, 0)
	grid.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		anchor := li.ChildrenFiltered("a").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}

		// Tournament ID is the second path segment of the href
		parts := strings.Split(href, "/")
		if len(parts) < 2 {
			return
		}
		tournamentID := parts[1]

		name := ""
		dateText := ""
		outer := anchor.ChildrenFiltered("div").First()
		if outer.Length() > 0 {
			inner := outer.ChildrenFiltered("div")
			if inner.Length() >= 2 {
				name = strings.TrimSpace(inner.Eq(0).Text())
				dateText = strings.TrimSpace(inner.Eq(1).Text())
			}
		}
		if name == "" {
			name = UnknownEventName
		}

		listings = append(listings, Listing{
			TournamentID: tournamentID,
			Name:         name,
			Date:         event.NormalizeDateRange(dateText),
		})
	})

	return listings, nil
}
