package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/labs-events/internal/event"
	"github.com/pfrederiksen/labs-events/internal/storage"
)

const testListingHTML = `<html><body>
<ul class="grid">
	<li><a href="/t1/details"><div><div>Spring Regional</div><div>March 8 &#8211; 9, 2025</div></div></a></li>
	<li><a href="/t2/details"><div><div>Winter Regional</div><div>Bad Date</div></div></a></li>
</ul>
</body></html>`

// newTestServer serves a fixed listing page and standings pages,
// counting standings requests.
func newTestServer(t *testing.T, standingsHits *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "labs-events") {
			t.Errorf("User-Agent = %q, should contain 'labs-events'", userAgent)
		}

		switch {
		case r.URL.Path == "/":
			w.Write([]byte(testListingHTML))
		case strings.HasSuffix(r.URL.Path, "/standings"):
			*standingsHits++
			if strings.HasPrefix(r.URL.Path, "/t2/JR/") {
				// One division with no published standings
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(`<html><body><div>128 players</div></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantError  bool
	}{
		{
			name:       "successful fetch",
			statusCode: http.StatusOK,
			body:       "<html></html>",
			wantError:  false,
		},
		{
			name:       "HTTP error status",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "server error status",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s := New(server.URL, 0, 0)
			body, err := s.Fetch(context.Background(), server.URL)

			if tt.wantError {
				if err == nil {
					t.Error("Fetch() expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Fetch() unexpected error: %v", err)
				}
				if body != tt.body {
					t.Errorf("Fetch() = %q, want %q", body, tt.body)
				}
			}
		})
	}
}

func TestFetchPlayerCount(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	s := New(server.URL, 0, 0)

	count := s.FetchPlayerCount(context.Background(), "t1", "MA")
	if count == nil || *count != 128 {
		t.Errorf("FetchPlayerCount() = %v, want 128", count)
	}

	// A missing standings page is absorbed, not an error
	count = s.FetchPlayerCount(context.Background(), "t2", "JR")
	if count != nil {
		t.Errorf("FetchPlayerCount() = %d, want nil for missing page", *count)
	}
}

func TestRun(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	output := filepath.Join(t.TempDir(), "events.json")
	s := New(server.URL, 0, 0)
	store := storage.New()

	events, summary, err := s.Run(context.Background(), store, Options{
		OutputPath: output,
		Game:       "PTCG",
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Two tournaments, three divisions each
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	if summary.Fetched != 6 || summary.Cached != 0 || summary.Total != 6 {
		t.Errorf("summary = %+v, want 6 fetched, 0 cached", summary)
	}
	if hits != 6 {
		t.Errorf("expected 6 standings fetches, got %d", hits)
	}

	// Dated events first (descending division within the date),
	// undated events last
	wantIDs := []string{"t1_SR", "t1_MA", "t1_JR", "t2_SR", "t2_MA", "t2_JR"}
	for i, id := range wantIDs {
		if events[i].ID != id {
			t.Errorf("events[%d].ID = %q, want %q", i, events[i].ID, id)
		}
	}

	for _, evt := range events {
		if evt.Game != "PTCG" {
			t.Errorf("event %s game = %q, want PTCG", evt.ID, evt.Game)
		}
		if evt.Format != "" {
			t.Errorf("event %s format = %q, want empty", evt.ID, evt.Format)
		}
	}

	// t2's JR standings page 404s; the record still exists without a count
	for _, evt := range events {
		if evt.ID == "t2_JR" && evt.PlayerCount != nil {
			t.Errorf("t2_JR player count = %d, want nil", *evt.PlayerCount)
		}
		if evt.ID == "t1_MA" && (evt.PlayerCount == nil || *evt.PlayerCount != 128) {
			t.Errorf("t1_MA player count = %v, want 128", evt.PlayerCount)
		}
	}
}

func TestRunCacheReuse(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	output := filepath.Join(t.TempDir(), "events.json")
	store := storage.New()
	opts := Options{OutputPath: output, Game: "PTCG"}

	if _, _, err := New(server.URL, 0, 0).Run(context.Background(), store, opts); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}
	firstSnapshot, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading first snapshot: %v", err)
	}
	firstHits := hits

	// Second run against unchanged pages: all cache hits, zero fresh
	// standings fetches, byte-identical snapshot
	_, summary, err := New(server.URL, 0, 0).Run(context.Background(), store, opts)
	if err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}
	if hits != firstHits {
		t.Errorf("second run performed %d standings fetches, want 0", hits-firstHits)
	}
	if summary.Cached != 6 || summary.Fetched != 0 {
		t.Errorf("summary = %+v, want 6 cached, 0 fetched", summary)
	}

	secondSnapshot, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading second snapshot: %v", err)
	}
	if string(firstSnapshot) != string(secondSnapshot) {
		t.Error("second run produced a different snapshot")
	}
}

func TestRunListingFetchFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	output := filepath.Join(t.TempDir(), "events.json")
	s := New(server.URL, 0, 0)

	_, _, err := s.Run(context.Background(), storage.New(), Options{OutputPath: output, Game: "PTCG"})
	if err == nil {
		t.Fatal("Run() expected error for failing listing fetch")
	}

	// Nothing is written on a fatal failure
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("expected no snapshot to be written")
	}
}

func TestRunListingParseFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>redesigned page</p></body></html>`))
	}))
	defer server.Close()

	output := filepath.Join(t.TempDir(), "events.json")
	s := New(server.URL, 0, 0)

	_, _, err := s.Run(context.Background(), storage.New(), Options{OutputPath: output, Game: "PTCG"})
	if !errors.Is(err, ErrNoListing) {
		t.Fatalf("Run() error = %v, want ErrNoListing", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("expected no snapshot to be written")
	}
}

func TestRunAttachesFormat(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	output := filepath.Join(t.TempDir(), "events.json")
	s := New(server.URL, 0, 0)

	events, _, err := s.Run(context.Background(), storage.New(), Options{
		OutputPath: output,
		Game:       "PTCG",
		Format:     "standard",
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for _, evt := range events {
		if evt.Format != "standard" {
			t.Errorf("event %s format = %q, want %q", evt.ID, evt.Format, "standard")
		}
	}
	if _, ok := anyEvent(events, "t1_MA"); !ok {
		t.Error("expected t1_MA in results")
	}
}

func anyEvent(events []*event.Event, id string) (*event.Event, bool) {
	for _, evt := range events {
		if evt.ID == id {
			return evt, true
		}
	}
	return nil, false
}
