package feed

import "fmt"

// ValidationError means the requested count was rejected before any
// network call.
type ValidationError struct {
	Input   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid count %q: %s", e.Input, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError wraps any failure while fetching images: network errors,
// non-success statuses and undecodable bodies alike.
type TransportError struct {
	Count int
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %d cats: %v", e.Count, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
