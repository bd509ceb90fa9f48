package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrBadResponse = errors.New("malformed response")
)

// StatusError reports a non-2xx response. Its message mirrors what the user
// sees: the operation followed by the HTTP status text.
type StatusError struct {
	Op     string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
