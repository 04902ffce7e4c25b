package store

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/roach88/days/internal/event"
)

type lineKind int

const (
	lineHeader lineKind = iota
	lineBlank
	lineRecord
	lineInvalid
)

// scanLines calls fn for every line of r with its 1-based number and its raw
// bytes, including the line terminator if present.
func scanLines(r io.Reader, fn func(n int, raw []byte) error) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			if ferr := fn(n, raw); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// classify decides what a raw line is. The first line is always the header.
func classify(n int, raw []byte) (event.Event, lineKind, error) {
	if n == 1 {
		return event.Event{}, lineHeader, nil
	}
	text := strings.TrimRight(string(raw), "\r\n")
	if strings.TrimSpace(text) == "" {
		return event.Event{}, lineBlank, nil
	}
	e, err := event.Decode(text)
	if err != nil {
		return event.Event{}, lineInvalid, &LineError{Line: n, Text: text, Err: err}
	}
	return e, lineRecord, nil
}
