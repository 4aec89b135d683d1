package event

import "fmt"

// Divisions is the fixed set of age division codes, in scrape order.
var Divisions = []string{"JR", "SR", "MA"}

// Event represents a single tournament division as persisted in the
// events snapshot. One tournament on the Labs homepage produces one
// Event per division.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        *string `json:"date"` // YYYY-MM-DD, null when the listing date could not be parsed
	Game        string  `json:"game"`
	Division    string  `json:"division"`
	PlayerCount *int    `json:"player_count,omitempty"`
	Format      string  `json:"format,omitempty"`
}

// EventID builds the composite snapshot key for a tournament division.
func EventID(tournamentID, division string) string {
	return fmt.Sprintf("%s_%s", tournamentID, division)
}

// DisplayName builds the rendered event name for a tournament division.
func DisplayName(tournamentName, division string) string {
	return fmt.Sprintf("%s (%s)", tournamentName, division)
}

// New creates an Event for one tournament division. date and playerCount
// may be nil; format is attached only when non-empty.
func New(tournamentID, tournamentName string, date *string, game, division string, playerCount *int, format string) *Event {
	return &Event{
		ID:          EventID(tournamentID, division),
		Name:        DisplayName(tournamentName, division),
		Date:        date,
		Game:        game,
		Division:    division,
		PlayerCount: playerCount,
		Format:      format,
	}
}

// dateKey returns the sort key for an event date, treating a missing
// date as the empty string so undated events sort after dated ones in
// descending order.
func (e *Event) dateKey() string {
	if e.Date == nil {
		return ""
	}
	return *e.Date
}
