package search

import (
	"errors"
	"fmt"
)

// ErrFetch matches every FetchError via errors.Is.
var ErrFetch = errors.New("search fetch failed")

// FetchError reports a store failure. Searches are never retried.
type FetchError struct {
	Strategy Strategy
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("search %s: %v", e.Strategy, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}
