package domain

import "errors"

var (
	// ErrInvalidRequest is returned when lookup parameters are unusable
	// (blank query, non-positive weight).
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNotFound is returned when neither the dictionary nor the external
	// service knows the food. A normal outcome, not a failure.
	ErrNotFound = errors.New("no nutrition data found")

	// ErrUnavailable is returned when the external path could not give an
	// answer: the API key is not configured, or every attempted variant
	// failed at the transport/parse level.
	ErrUnavailable = errors.New("nutrition service unavailable")

	// ErrLookupFailure marks a single failed call to the external API
	// (bad status, empty body, malformed JSON, network error). Recovered
	// by advancing to the next query variant.
	ErrLookupFailure = errors.New("nutrition API request failed")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)
