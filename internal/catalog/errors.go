package catalog

import "errors"

var (
	// ErrUnavailable indicates the catalog host could not be reached.
	ErrUnavailable = errors.New("catalog server unavailable")

	// ErrTimeout indicates the fetch exceeded the configured timeout.
	ErrTimeout = errors.New("catalog request timed out")

	// ErrBadStatus indicates the server answered with a non-200 status.
	ErrBadStatus = errors.New("unexpected catalog response status")

	// ErrMalformed indicates the body is not a JSON object.
	ErrMalformed = errors.New("malformed catalog document")

	// ErrTooLarge indicates the body exceeded the configured size cap.
	ErrTooLarge = errors.New("catalog document too large")
)
