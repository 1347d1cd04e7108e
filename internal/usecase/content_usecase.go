package usecase

import (
	"context"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

// ContentUseCase serves the curated dashboard content.
type ContentUseCase interface {
	Destinations(ctx context.Context) ([]*model.Destination, error)
	CulturalSpots(ctx context.Context) ([]*model.CulturalSpot, error)
	Events(ctx context.Context) ([]*model.Event, error)
	TravelTip(ctx context.Context) (*model.TravelTip, error)
}

type contentUseCaseImpl struct {
	content repository.ContentRepository
}

func NewContentUseCase(content repository.ContentRepository) ContentUseCase {
	return &contentUseCaseImpl{content: content}
}

func (u *contentUseCaseImpl) Destinations(ctx context.Context) ([]*model.Destination, error) {
	return u.content.ListDestinations(ctx)
}

func (u *contentUseCaseImpl) CulturalSpots(ctx context.Context) ([]*model.CulturalSpot, error) {
	return u.content.ListCulturalSpots(ctx)
}

func (u *contentUseCaseImpl) Events(ctx context.Context) ([]*model.Event, error) {
	return u.content.ListEvents(ctx)
}

func (u *contentUseCaseImpl) TravelTip(ctx context.Context) (*model.TravelTip, error) {
	return u.content.RandomTravelTip(ctx)
}
