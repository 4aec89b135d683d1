// Package scraper provides HTTP fetching, HTML parsing, and the
// merge-scrape pipeline for Labs tournament events.
//
// The scraper fetches the Labs homepage, extracts the tournament list
// (IDs, names, normalized dates), and assembles one event record per
// tournament division. Records already present in the previous snapshot
// are reused as-is; only new ones trigger a standings fetch for the
// division's player count. Fetches run strictly sequentially, paced by
// a rate limiter to stay polite to the remote server.
package scraper
