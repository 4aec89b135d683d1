// Package storage provides JSON-based persistence for the events snapshot.
//
// The snapshot is a single pretty-printed JSON array of events, read once
// when a scrape starts (into a lookup keyed by event ID) and overwritten
// once when it finishes. A missing or corrupt snapshot is treated as empty
// so the scrape falls back to fetching everything fresh.
package storage
