package days

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by bad command arguments. Nothing has been
// mutated when an ErrUsage error is returned.
var ErrUsage = errors.New("usage error")

// ErrInvalidEvent marks an Add rejected by validation. It is a usage error.
var ErrInvalidEvent = fmt.Errorf("%w: invalid event", ErrUsage)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// IsUsageError reports whether err was caused by bad arguments.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}
