package event

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// Delimiter separates the fields of an encoded record.
	Delimiter = ","

	// Header is the first line of every backing file. It is never data.
	Header = "date,category,description"
)

// ErrFieldCount is returned by Decode for lines with fewer than three fields.
var ErrFieldCount = errors.New("expected 3 fields")

// Event is one stored record. An empty Category means "no category".
type Event struct {
	Date        Date   `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Encode renders e as one line without a trailing newline.
func Encode(e Event) string {
	return e.Date.String() + Delimiter + e.Category + Delimiter + e.Description
}

// Decode parses one line (without its line terminator).
// Field 0 is the date, field 1 the category and the remainder the description.
// Category and description are returned in NFC, so a file edited by hand in
// another normalization form still compares equal to normalized arguments.
func Decode(line string) (Event, error) {
	fields := strings.SplitN(line, Delimiter, 3)
	if len(fields) != 3 {
		return Event{}, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}
	d, err := ParseDate(fields[0])
	if err != nil {
		return Event{}, err
	}
	return Event{Date: d, Category: Normalize(fields[1]), Description: Normalize(fields[2])}, nil
}

// Normalize returns s in Unicode NFC form so that visually identical
// categories and descriptions compare equal byte for byte.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
