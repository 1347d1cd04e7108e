package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travelmate/internal/domain/model"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiClient talks to the Gemini generateContent API.
type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiClient creates a client for the public Gemini endpoint.
func NewGeminiClient(apiKey string) *GeminiClient {
	return NewGeminiClientWithEndpoint(apiKey, defaultGeminiEndpoint)
}

// NewGeminiClientWithEndpoint allows overriding the endpoint, used by tests.
func NewGeminiClientWithEndpoint(apiKey, endpoint string) *GeminiClient {
	return &GeminiClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Generate sends the conversation to Gemini and returns the generated
// prose. The optional system prompt is prepended as a user turn, and
// "system" message roles are likewise downgraded to "user" since the
// generateContent API only accepts user and model roles.
func (c *GeminiClient) Generate(ctx context.Context, messages []model.ChatMessage, systemPrompt string) (string, error) {
	contents := make([]geminiContent, 0, len(messages)+1)
	if systemPrompt != "" {
		contents = append(contents, geminiContent{
			Role:  "user",
			Parts: []geminiPart{{Text: systemPrompt}},
		})
	}
	for _, msg := range messages {
		role := msg.Role
		if role == model.ChatRoleSystem {
			role = model.ChatRoleUser
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	reqBody, err := json.Marshal(geminiRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1000,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize request: %w", err)
	}

	reqURL := fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: text generation request: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: text generation returned %d: %s", model.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: invalid text generation response: %v", model.ErrProviderUnavailable, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: text generation error: %s", model.ErrProviderUnavailable, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates generated", model.ErrProviderUnavailable)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
