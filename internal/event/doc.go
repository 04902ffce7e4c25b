// Package event defines the single record type stored by days and its
// on-disk line codec.
//
// A backing file is a header line followed by one record per line:
//
//	date,category,description
//	2024-01-01,work,standup
//	2024-06-01,,trip
//
// The format has no quoting. Decode splits a line into at most three fields,
// so a description may contain commas but a category may not.
package event
