package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

const translationsCollection = "translations"

// FirestoreTranslationsRepository stores cultural-advice exchanges.
type FirestoreTranslationsRepository struct {
	client *firestore.Client
}

func NewFirestoreTranslationsRepository(client *firestore.Client) repository.TranslationsRepository {
	return &FirestoreTranslationsRepository{client: client}
}

func (r *FirestoreTranslationsRepository) Create(ctx context.Context, translation *model.Translation) (string, error) {
	translationID := fmt.Sprintf("translation_%s", uuid.New().String())
	translation.CreatedAt = time.Now()

	if _, err := r.client.Collection(translationsCollection).Doc(translationID).Set(ctx, translation); err != nil {
		return "", fmt.Errorf("failed to save translation: %w", err)
	}

	translation.ID = translationID
	return translationID, nil
}

func (r *FirestoreTranslationsRepository) ListByUser(ctx context.Context, userID string) ([]*model.Translation, error) {
	iter := r.client.Collection(translationsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var translations []*model.Translation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list translations: %w", err)
		}

		var translation model.Translation
		if err := doc.DataTo(&translation); err != nil {
			return nil, fmt.Errorf("failed to decode translation %s: %w", doc.Ref.ID, err)
		}
		translation.ID = doc.Ref.ID
		translations = append(translations, &translation)
	}
	return translations, nil
}
