package matching

import "errors"

var (
	// ErrStoreUnavailable means no record store was configured at startup.
	ErrStoreUnavailable = errors.New("Database configuration missing.")
	// ErrStoreQuery wraps any failure of the candidate read.
	ErrStoreQuery = errors.New("Database query failed")
)
