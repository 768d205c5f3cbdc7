package registry

import (
	"errors"
	"fmt"
)

// ErrMalformedRegistry is returned when a registry document or table cannot
// be turned into a consistent set of entry points. It only ever surfaces at
// generation time.
var ErrMalformedRegistry = errors.New("malformed registry")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRegistry, fmt.Sprintf(format, args...))
}
