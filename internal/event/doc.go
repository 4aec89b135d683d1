// Package event provides the data model for scraped Labs tournament events.
//
// A tournament on the Labs homepage expands into one event per division
// (JR, SR, MA), identified by the composite key "{tournament_id}_{division}".
// The package also handles listing date normalization and the snapshot
// sort order (newest first, undated events last).
package event
