package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

const routesCollection = "routes"

// FirestoreSavedRoutesRepository stores the routes produced by successful
// planning submissions.
type FirestoreSavedRoutesRepository struct {
	client *firestore.Client
}

func NewFirestoreSavedRoutesRepository(client *firestore.Client) repository.SavedRoutesRepository {
	return &FirestoreSavedRoutesRepository{client: client}
}

func (r *FirestoreSavedRoutesRepository) Create(ctx context.Context, route *model.SavedRoute) (string, error) {
	routeID := fmt.Sprintf("route_%s", uuid.New().String())
	route.CreatedAt = time.Now()

	if _, err := r.client.Collection(routesCollection).Doc(routeID).Set(ctx, route); err != nil {
		return "", fmt.Errorf("failed to save route: %w", err)
	}

	route.ID = routeID
	log.Printf("route saved: %s (%s -> %s, %d stops)", routeID, route.StartLocation, route.EndLocation, len(route.PointsOfInterest))
	return routeID, nil
}

func (r *FirestoreSavedRoutesRepository) ListByUser(ctx context.Context, userID string) ([]*model.SavedRoute, error) {
	iter := r.client.Collection(routesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var routes []*model.SavedRoute
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list routes: %w", err)
		}

		var route model.SavedRoute
		if err := doc.DataTo(&route); err != nil {
			return nil, fmt.Errorf("failed to decode route %s: %w", doc.Ref.ID, err)
		}
		route.ID = doc.Ref.ID
		routes = append(routes, &route)
	}
	return routes, nil
}
