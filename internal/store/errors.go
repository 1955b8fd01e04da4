package store

import "errors"

var (
	// ErrPostNotFound is returned when an operation targets a post id that is
	// absent from the store, including ids that have already expired.
	ErrPostNotFound = errors.New("post not found")

	// ErrAlreadyLiked is returned when a submitter likes the same post twice.
	ErrAlreadyLiked = errors.New("post already liked by this user")

	// ErrInvalidCoordinates is returned when latitude is outside -90..90 or
	// longitude is outside -180..180.
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)
