package ytdata

import "errors"

// Sentinel errors returned by client and iterator operations.
var (
	// ErrDone signals that an iterator has yielded every item it will
	// produce. It is a terminal state, not a failure.
	ErrDone = errors.New("ytdata: no more items in iterator")

	// ErrUsage marks a precondition violation detected before any request
	// is issued, such as asking for a channel list with both an explicit
	// ID set and the "mine" scope.
	ErrUsage = errors.New("ytdata: invalid usage")

	// ErrMalformedResponse marks a response item missing a field the API
	// contract guarantees, or carrying a value that does not parse.
	ErrMalformedResponse = errors.New("ytdata: malformed API response")

	// ErrNotFound is returned by single-resource lookups when the API
	// resolves the ID to nothing.
	ErrNotFound = errors.New("ytdata: resource not found")
)
