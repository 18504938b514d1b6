package utils

import (
	"fmt"
)

// Wraps an error with a formatted details message, so that errors.Is() still matches the wrapped error
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}
