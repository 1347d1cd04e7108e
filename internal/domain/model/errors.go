package model

import "errors"

// Planning outcome errors. NotFound-style values are valid negative
// outcomes from a provider, distinct from a provider being unreachable.
var (
	// ErrEmptyLocation is returned when a submitted location text is empty.
	ErrEmptyLocation = errors.New("start and end locations are required")

	// ErrLocationNotFound means the geocoder had zero matches for the query.
	ErrLocationNotFound = errors.New("location not found")

	// ErrNoRouteFound means the directions provider returned no usable
	// geometry (no route, or fewer than two points).
	ErrNoRouteFound = errors.New("no drivable route")

	// ErrProviderUnavailable covers transport failures, provider errors and
	// timeouts on any external call.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrPlanSuperseded is returned to a planning request that was cancelled
	// because the same user submitted a newer one.
	ErrPlanSuperseded = errors.New("planning request superseded")
)

// Persistence errors surfaced by repositories.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotOwner         = errors.New("document belongs to another user")
)
