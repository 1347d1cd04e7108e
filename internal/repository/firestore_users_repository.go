package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

const usersCollection = "users"

// FirestoreUsersRepository stores profile documents keyed by user id.
type FirestoreUsersRepository struct {
	client *firestore.Client
}

func NewFirestoreUsersRepository(client *firestore.Client) repository.UsersRepository {
	return &FirestoreUsersRepository{client: client}
}

func (r *FirestoreUsersRepository) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	doc, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile %s: %w", userID, model.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}

	var profile model.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", userID, err)
	}
	profile.ID = doc.Ref.ID
	return &profile, nil
}

func (r *FirestoreUsersRepository) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if _, err := r.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.ID, err)
	}
	return nil
}
