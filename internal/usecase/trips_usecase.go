package usecase

import (
	"context"
	"fmt"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

// TripsUseCase manages a user's saved trips with ownership checks.
type TripsUseCase interface {
	CreateTrip(ctx context.Context, userID string, trip *model.Trip) (string, error)
	GetTrip(ctx context.Context, userID, tripID string) (*model.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]*model.Trip, error)
	UpdateTrip(ctx context.Context, userID string, trip *model.Trip) error
	DeleteTrip(ctx context.Context, userID, tripID string) error
}

type tripsUseCaseImpl struct {
	trips repository.TripsRepository
}

func NewTripsUseCase(trips repository.TripsRepository) TripsUseCase {
	return &tripsUseCaseImpl{trips: trips}
}

func (u *tripsUseCaseImpl) CreateTrip(ctx context.Context, userID string, trip *model.Trip) (string, error) {
	trip.UserID = userID
	id, err := u.trips.Create(ctx, trip)
	if err != nil {
		return "", fmt.Errorf("failed to create trip: %w", err)
	}
	return id, nil
}

func (u *tripsUseCaseImpl) GetTrip(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	return u.ownedTrip(ctx, userID, tripID)
}

func (u *tripsUseCaseImpl) ListTrips(ctx context.Context, userID string) ([]*model.Trip, error) {
	return u.trips.ListByUser(ctx, userID)
}

func (u *tripsUseCaseImpl) UpdateTrip(ctx context.Context, userID string, trip *model.Trip) error {
	existing, err := u.ownedTrip(ctx, userID, trip.ID)
	if err != nil {
		return err
	}

	trip.UserID = existing.UserID
	trip.CreatedAt = existing.CreatedAt
	return u.trips.Update(ctx, trip)
}

func (u *tripsUseCaseImpl) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if _, err := u.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	return u.trips.Delete(ctx, tripID)
}

// ownedTrip loads a trip and verifies it belongs to the requesting user.
func (u *tripsUseCaseImpl) ownedTrip(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	trip, err := u.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("trip %s: %w", tripID, model.ErrNotOwner)
	}
	return trip, nil
}
