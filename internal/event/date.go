package event

import (
	"strings"
	"time"
)

const (
	// listingDateLayout is the expected format of a reduced listing
	// date, e.g. "July 12, 2025". Month names are English regardless
	// of ambient locale.
	listingDateLayout = "January 2, 2006"

	// rangeDash is the en-dash (U+2013) Labs places between the start
	// and end day of a date range. Other dash characters are not
	// recognized.
	rangeDash = "–"
)

// NormalizeDateRange reduces a listing date-range string such as
// "July 12 – 14, 2025" to the range's first day in YYYY-MM-DD form.
// The substring before the first en-dash is joined with the substring
// from the first comma onward ("July 12" + ", 2025") and parsed as
// "Month Day, Year".
//
// Normalization is best-effort: a missing dash or comma, or a string
// that does not parse as a date, yields "". Ranges spanning a year
// boundary contain a second comma before the dash and also yield "".
func NormalizeDateRange(s string) string {
	dash := strings.Index(s, rangeDash)
	comma := strings.Index(s, ",")
	if dash < 0 || comma < 0 {
		return ""
	}

	reduced := strings.TrimSpace(s[:dash]) + s[comma:]
	t, err := time.Parse(listingDateLayout, reduced)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
