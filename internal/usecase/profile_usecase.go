package usecase

import (
	"context"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

// ProfileUseCase manages the per-user profile document.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile *model.UserProfile) error
}

type profileUseCaseImpl struct {
	users repository.UsersRepository
}

func NewProfileUseCase(users repository.UsersRepository) ProfileUseCase {
	return &profileUseCaseImpl{users: users}
}

func (u *profileUseCaseImpl) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return u.users.GetProfile(ctx, userID)
}

func (u *profileUseCaseImpl) SaveProfile(ctx context.Context, userID string, profile *model.UserProfile) error {
	profile.ID = userID
	return u.users.SaveProfile(ctx, profile)
}
