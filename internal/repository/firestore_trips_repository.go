package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

const tripsCollection = "trips"

// FirestoreTripsRepository stores saved trips in the trips collection.
type FirestoreTripsRepository struct {
	client *firestore.Client
}

func NewFirestoreTripsRepository(client *firestore.Client) repository.TripsRepository {
	return &FirestoreTripsRepository{client: client}
}

func (r *FirestoreTripsRepository) Create(ctx context.Context, trip *model.Trip) (string, error) {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	doc := r.client.Collection(tripsCollection).NewDoc()
	if _, err := doc.Set(ctx, trip); err != nil {
		return "", fmt.Errorf("failed to save trip: %w", err)
	}

	trip.ID = doc.ID
	return doc.ID, nil
}

func (r *FirestoreTripsRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	doc, err := r.client.Collection(tripsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("trip %s: %w", id, model.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}

	var trip model.Trip
	if err := doc.DataTo(&trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip %s: %w", id, err)
	}
	trip.ID = doc.Ref.ID
	return &trip, nil
}

func (r *FirestoreTripsRepository) ListByUser(ctx context.Context, userID string) ([]*model.Trip, error) {
	iter := r.client.Collection(tripsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var trips []*model.Trip
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list trips: %w", err)
		}

		var trip model.Trip
		if err := doc.DataTo(&trip); err != nil {
			return nil, fmt.Errorf("failed to decode trip %s: %w", doc.Ref.ID, err)
		}
		trip.ID = doc.Ref.ID
		trips = append(trips, &trip)
	}
	return trips, nil
}

func (r *FirestoreTripsRepository) Update(ctx context.Context, trip *model.Trip) error {
	trip.UpdatedAt = time.Now()
	if _, err := r.client.Collection(tripsCollection).Doc(trip.ID).Set(ctx, trip); err != nil {
		return fmt.Errorf("failed to update trip %s: %w", trip.ID, err)
	}
	return nil
}

func (r *FirestoreTripsRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(tripsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	return nil
}
