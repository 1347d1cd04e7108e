package repository

import (
	"context"
	"database/sql"
	"fmt"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
	"travelmate/internal/infrastructure/database"
)

// PostgresContentRepository serves the curated dashboard content
// (destinations, cultural spots, events, travel tips) from Postgres.
type PostgresContentRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresContentRepository(client *database.PostgreSQLClient) repository.ContentRepository {
	return &PostgresContentRepository{client: client}
}

func (r *PostgresContentRepository) ListDestinations(ctx context.Context) ([]*model.Destination, error) {
	rows, err := r.client.DB.QueryContext(ctx,
		`SELECT id, name, description, image_url FROM destinations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*model.Destination
	for rows.Next() {
		var d model.Destination
		var imageURL sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		d.ImageURL = imageURL.String
		destinations = append(destinations, &d)
	}
	return destinations, rows.Err()
}

func (r *PostgresContentRepository) ListCulturalSpots(ctx context.Context) ([]*model.CulturalSpot, error) {
	rows, err := r.client.DB.QueryContext(ctx,
		`SELECT id, name, location, image_url FROM cultural_spots ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cultural spots: %w", err)
	}
	defer rows.Close()

	var spots []*model.CulturalSpot
	for rows.Next() {
		var s model.CulturalSpot
		var imageURL sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &imageURL); err != nil {
			return nil, fmt.Errorf("failed to scan cultural spot: %w", err)
		}
		s.ImageURL = imageURL.String
		spots = append(spots, &s)
	}
	return spots, rows.Err()
}

func (r *PostgresContentRepository) ListEvents(ctx context.Context) ([]*model.Event, error) {
	rows, err := r.client.DB.QueryContext(ctx,
		`SELECT id, name, date_text, location FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.DateText, &e.Location); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *PostgresContentRepository) RandomTravelTip(ctx context.Context) (*model.TravelTip, error) {
	var tip model.TravelTip
	err := r.client.DB.QueryRowContext(ctx,
		`SELECT id, tip FROM travel_tips ORDER BY random() LIMIT 1`).Scan(&tip.ID, &tip.Tip)
	if err == sql.ErrNoRows {
		return nil, model.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query travel tip: %w", err)
	}
	return &tip, nil
}
