// Package export writes selected events to other formats:
//   - ICS: one all-day VEVENT per event, for calendar applications
//   - SQLite: an events table, for ad-hoc SQL queries
//
// Exports are read-only with respect to the backing file.
package export
