package usecase

import (
	"context"
	"log"
	"time"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
	"travelmate/internal/infrastructure/ai"
)

const translationSaveTimeout = 10 * time.Second

// AssistantUseCase covers the AI-backed features: free-form travel chat,
// cultural etiquette advice and place descriptions.
type AssistantUseCase interface {
	Chat(ctx context.Context, messages []model.ChatMessage) (string, error)

	// CulturalAdvice answers an etiquette question and, for authenticated
	// users, saves the exchange to their translation history in the
	// background. A failed save is logged and never surfaced.
	CulturalAdvice(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error)

	DescribePlace(ctx context.Context, placeName string) (*model.PlaceDescription, error)

	ListTranslations(ctx context.Context, userID string) ([]*model.Translation, error)
}

type assistantUseCaseImpl struct {
	assistant    *ai.TravelAssistant
	translations repository.TranslationsRepository
}

func NewAssistantUseCase(assistant *ai.TravelAssistant, translations repository.TranslationsRepository) AssistantUseCase {
	return &assistantUseCaseImpl{
		assistant:    assistant,
		translations: translations,
	}
}

func (u *assistantUseCaseImpl) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return u.assistant.Chat(ctx, messages)
}

func (u *assistantUseCaseImpl) CulturalAdvice(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error) {
	response, err := u.assistant.CulturalAdvice(ctx, originCountry, destinationCountry, question)
	if err != nil {
		return "", err
	}

	if userID != "" && u.translations != nil {
		translation := &model.Translation{
			UserID:             userID,
			OriginCountry:      originCountry,
			DestinationCountry: destinationCountry,
			Question:           question,
			Response:           response,
		}
		go func() {
			saveCtx, cancel := context.WithTimeout(context.Background(), translationSaveTimeout)
			defer cancel()
			if _, err := u.translations.Create(saveCtx, translation); err != nil {
				log.Printf("failed to save translation for user %s: %v", userID, err)
			}
		}()
	}

	return response, nil
}

func (u *assistantUseCaseImpl) DescribePlace(ctx context.Context, placeName string) (*model.PlaceDescription, error) {
	return u.assistant.DescribePlace(ctx, placeName)
}

func (u *assistantUseCaseImpl) ListTranslations(ctx context.Context, userID string) ([]*model.Translation, error) {
	return u.translations.ListByUser(ctx, userID)
}
