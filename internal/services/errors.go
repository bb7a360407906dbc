package services

import "errors"

var (
	// ErrInvalidInteractionKind rejects interaction types outside the
	// view/like/purchase enum before anything is written.
	ErrInvalidInteractionKind = errors.New("invalid interaction kind")
	// ErrStorageUnavailable signals a failed write to the interaction log.
	// Retry policy belongs to the caller.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrRecommendationUnavailable signals that a recommendation request
	// failed at some fetch step. Partial results are never returned.
	ErrRecommendationUnavailable = errors.New("recommendations unavailable")
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
