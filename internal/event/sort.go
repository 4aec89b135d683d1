package event

import "sort"

// SortEvents orders events newest first: descending by date, then
// descending by division code. Events without a date compare as the
// empty string and land after every dated event. The sort is stable,
// so events with equal keys keep their assembly order.
func SortEvents(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].dateKey(), events[j].dateKey()
		if di != dj {
			return di > dj
		}
		return events[i].Division > events[j].Division
	})
}
