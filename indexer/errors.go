package indexer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks a non-2xx answer from the indexer.
	ErrUnavailable = errors.New("indexer unavailable")

	// ErrMalformed marks a response body that is not a JSON array of rows.
	ErrMalformed = errors.New("malformed indexer response")
)

// QueryError names the query that failed. Status is the HTTP status when the
// failure came from the transport, zero otherwise.
type QueryError struct {
	Query  string
	Status int
	Err    error
}

func (e *QueryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("indexer query %s: status %d: %v", e.Query, e.Status, e.Err)
	}
	return fmt.Sprintf("indexer query %s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
