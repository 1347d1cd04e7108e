package repository

import (
	"context"

	"travelmate/internal/domain/model"
)

// TripsRepository stores user-saved trips.
type TripsRepository interface {
	Create(ctx context.Context, trip *model.Trip) (string, error)
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	// ListByUser returns the user's trips ordered by creation time, newest first.
	ListByUser(ctx context.Context, userID string) ([]*model.Trip, error)
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id string) error
}

// SavedRoutesRepository stores the outcome of successful planning requests.
type SavedRoutesRepository interface {
	Create(ctx context.Context, route *model.SavedRoute) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*model.SavedRoute, error)
}

// TranslationsRepository stores cultural-advice exchanges.
type TranslationsRepository interface {
	Create(ctx context.Context, translation *model.Translation) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Translation, error)
}

// UsersRepository stores per-user profile documents keyed by the auth user id.
type UsersRepository interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
}

// ContentRepository serves the curated dashboard content.
type ContentRepository interface {
	ListDestinations(ctx context.Context) ([]*model.Destination, error)
	ListCulturalSpots(ctx context.Context) ([]*model.CulturalSpot, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	RandomTravelTip(ctx context.Context) (*model.TravelTip, error)
}
