package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

// travelMateSystemPrompt shapes the free-form travel chat.
const travelMateSystemPrompt = `You are TravelMate, a friendly and knowledgeable travel assistant that helps users plan their trips.

Your expertise includes:
- Creating customized travel itineraries
- Recommending destinations based on interests, budget, and travel style
- Sharing cultural insights and local customs
- Providing practical travel tips and packing advice
- Suggesting must-see attractions and hidden gems
- Answering questions about transportation, accommodations, and activities

Be friendly, enthusiastic, and personable. Use travel-related emojis to add personality to your responses.
Always be specific and detailed in your recommendations, and try to personalize your suggestions based on the user's preferences.
Keep your responses concise but informative. When suggesting an itinerary, organize it by days with specific activities.
Do NOT mention that you are an AI - just be a helpful, knowledgeable travel expert.`

const culturalAdvicePrompt = `You are a helpful cultural translator bot that helps travelers understand cultural etiquette.

Origin Country: %s
Destination Country: %s
Question: %s

Provide a brief, friendly response with bullet points and appropriate emojis. Include cultural do's and don'ts if relevant.
Keep your answer concise and focused on practical advice.`

const placeDescriptionPrompt = `Give me a 1-2 sentence, travel-friendly English summary describing what is special about %q for a tourist (include cultural facts, vibe, style, or nature).
Then in a separate line, reply: "Famous for: ..." (one very famous thing, landmark, cultural place, food, or traditional style/garment).
Keep the information clear for travelers and DON'T mention that you are an AI.`

var famousForSplit = regexp.MustCompile(`(?i)Famous for:`)

// TravelAssistant wraps the text-generation provider with the prompts for
// the chat, cultural-advice and place-description features.
type TravelAssistant struct {
	generator repository.TextGenerator
}

func NewTravelAssistant(generator repository.TextGenerator) *TravelAssistant {
	return &TravelAssistant{generator: generator}
}

// Chat sends the conversation through with the TravelMate persona.
func (a *TravelAssistant) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return a.generator.Generate(ctx, messages, travelMateSystemPrompt)
}

// CulturalAdvice answers an etiquette question for a traveler going from
// one country to another.
func (a *TravelAssistant) CulturalAdvice(ctx context.Context, originCountry, destinationCountry, question string) (string, error) {
	prompt := fmt.Sprintf(culturalAdvicePrompt, originCountry, destinationCountry, question)
	return a.generator.Generate(ctx, []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: prompt},
	}, "")
}

// DescribePlace fetches a short description of a place and, when the
// response contains one, the single thing it is famous for.
func (a *TravelAssistant) DescribePlace(ctx context.Context, placeName string) (*model.PlaceDescription, error) {
	prompt := fmt.Sprintf(placeDescriptionPrompt, placeName)
	text, err := a.generator.Generate(ctx, []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: prompt},
	}, "")
	if err != nil {
		return nil, err
	}

	desc := &model.PlaceDescription{
		Place:       placeName,
		Description: strings.TrimSpace(text),
	}
	if parts := famousForSplit.Split(text, 2); len(parts) == 2 {
		desc.Description = strings.TrimSpace(parts[0])
		desc.FamousFor = strings.TrimSpace(strings.TrimLeft(parts[1], " \n-:"))
	}
	return desc, nil
}
