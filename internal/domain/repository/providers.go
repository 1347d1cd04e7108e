package repository

import (
	"context"

	"github.com/paulmach/orb"

	"travelmate/internal/domain/model"
)

// GeocodingProvider resolves between free-text place names and coordinates.
type GeocodingProvider interface {
	// Geocode resolves trimmed free text to the provider's top match.
	// Zero matches yield model.ErrLocationNotFound; transport or provider
	// faults yield model.ErrProviderUnavailable.
	Geocode(ctx context.Context, query string) (orb.Point, error)

	// ReverseGeocodePlace resolves a coordinate to the display name of the
	// nearest place-level match, with the same error contract as Geocode.
	ReverseGeocodePlace(ctx context.Context, point orb.Point) (string, error)
}

// DirectionsProvider resolves an origin/destination pair to a drivable path.
type DirectionsProvider interface {
	// GetDrivingRoute returns the provider's path in its original order,
	// origin first. Missing geometry or fewer than two points yield
	// model.ErrNoRouteFound; faults yield model.ErrProviderUnavailable.
	GetDrivingRoute(ctx context.Context, origin, destination orb.Point) (model.Route, error)
}

// TextGenerator produces prose from an ordered list of role-tagged messages
// plus an optional system instruction.
type TextGenerator interface {
	Generate(ctx context.Context, messages []model.ChatMessage, systemPrompt string) (string, error)
}

// AuthProvider maps a bearer token to a stable user identifier.
type AuthProvider interface {
	UserIDFromToken(ctx context.Context, token string) (string, error)
}
