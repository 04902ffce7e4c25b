// Package store provides the flat-file backing store for days events.
//
// The backing file is a header line followed by one encoded event per line
// (see package event). The store:
//   - Loads: reads the whole file into a Snapshot, keeping file order
//   - Appends: adds one line at the end, never inserting mid-file
//   - Rewrites: removes every line whose record matches a predicate
//
// # Rewrite Guarantees
//
// Rewrite is the only operation that removes data. It streams the original
// into a sibling temp file, copying every kept line byte for byte, then
// fsyncs the temp file and renames it over the original. A failure at any
// step before the rename leaves the original untouched and removes the temp
// file.
//
// Deletion is decided per physical line from that line's own decoded record.
// A record is never removed because its text happens to contain another
// record's text.
//
// # Snapshots
//
// Load caches its Snapshot. Append and Rewrite drop the cache, so the next
// Load within the same process re-reads the file.
//
// The store does not lock the file. Concurrent invocations may race.
package store
