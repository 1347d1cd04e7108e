package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/model"
)

type stubAssistantUseCase struct {
	chatFn     func(ctx context.Context, messages []model.ChatMessage) (string, error)
	adviceFn   func(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error)
	describeFn func(ctx context.Context, placeName string) (*model.PlaceDescription, error)
	listFn     func(ctx context.Context, userID string) ([]*model.Translation, error)
}

func (s *stubAssistantUseCase) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return s.chatFn(ctx, messages)
}

func (s *stubAssistantUseCase) CulturalAdvice(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error) {
	return s.adviceFn(ctx, userID, originCountry, destinationCountry, question)
}

func (s *stubAssistantUseCase) DescribePlace(ctx context.Context, placeName string) (*model.PlaceDescription, error) {
	return s.describeFn(ctx, placeName)
}

func (s *stubAssistantUseCase) ListTranslations(ctx context.Context, userID string) ([]*model.Translation, error) {
	return s.listFn(ctx, userID)
}

func newAssistantTestRouter(stub *stubAssistantUseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set(contextUserIDKey, userID)
			c.Next()
		})
	}
	h := NewAssistantHandler(stub)
	r.POST("/api/chat", h.PostChat)
	r.POST("/api/advice", h.PostAdvice)
	r.GET("/api/places/:name/description", h.GetPlaceDescription)
	r.GET("/api/translations", RequireAuth(), h.GetTranslations)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostChat(t *testing.T) {
	stub := &stubAssistantUseCase{
		chatFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
			require.Len(t, messages, 2)
			assert.Equal(t, model.ChatRoleUser, messages[0].Role)
			return "How about Lisbon in October?", nil
		},
	}
	r := newAssistantTestRouter(stub, "")

	w := postJSON(t, r, "/api/chat", `{"messages": [
		{"role": "user", "content": "Where should I go in autumn?"},
		{"role": "model", "content": "What kind of trip do you enjoy?"}
	]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "How about Lisbon in October?", resp["reply"])
}

func TestPostChatValidation(t *testing.T) {
	stub := &stubAssistantUseCase{
		chatFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
			t.Fatal("use case must not be reached on invalid input")
			return "", nil
		},
	}
	r := newAssistantTestRouter(stub, "")

	cases := []string{
		`{"messages": []}`,
		`{}`,
		`{"messages": [{"role": "wizard", "content": "hello"}]}`,
		`not json`,
	}
	for _, body := range cases {
		w := postJSON(t, r, "/api/chat", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestPostChatProviderFailure(t *testing.T) {
	stub := &stubAssistantUseCase{
		chatFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
			return "", model.ErrProviderUnavailable
		},
	}
	r := newAssistantTestRouter(stub, "")

	w := postJSON(t, r, "/api/chat", `{"messages": [{"role": "user", "content": "hi"}]}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPostAdvice(t *testing.T) {
	stub := &stubAssistantUseCase{
		adviceFn: func(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "Brazil", originCountry)
			assert.Equal(t, "Japan", destinationCountry)
			return "Bow when greeting.", nil
		},
	}
	r := newAssistantTestRouter(stub, "user-1")

	w := postJSON(t, r, "/api/advice", `{
		"origin_country": "Brazil",
		"destination_country": "Japan",
		"question": "How do I greet people?"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bow when greeting.", resp["response"])
}

func TestPostAdviceValidation(t *testing.T) {
	stub := &stubAssistantUseCase{
		adviceFn: func(ctx context.Context, userID, originCountry, destinationCountry, question string) (string, error) {
			t.Fatal("use case must not be reached on invalid input")
			return "", nil
		},
	}
	r := newAssistantTestRouter(stub, "")

	cases := []string{
		`{"origin_country": "", "destination_country": "Japan", "question": "hi"}`,
		`{"origin_country": "Brazil", "destination_country": "", "question": "hi"}`,
		`{"origin_country": "Brazil", "destination_country": "Japan", "question": "   "}`,
	}
	for _, body := range cases {
		w := postJSON(t, r, "/api/advice", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestGetPlaceDescription(t *testing.T) {
	stub := &stubAssistantUseCase{
		describeFn: func(ctx context.Context, placeName string) (*model.PlaceDescription, error) {
			assert.Equal(t, "Kyoto", placeName)
			return &model.PlaceDescription{
				Place:       "Kyoto",
				Description: "Ancient temples and quiet gardens.",
				FamousFor:   "Fushimi Inari Shrine",
			}, nil
		},
	}
	r := newAssistantTestRouter(stub, "")

	req := httptest.NewRequest(http.MethodGet, "/api/places/Kyoto/description", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var desc model.PlaceDescription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &desc))
	assert.Equal(t, "Fushimi Inari Shrine", desc.FamousFor)
}

func TestGetTranslationsRequiresAuth(t *testing.T) {
	stub := &stubAssistantUseCase{
		listFn: func(ctx context.Context, userID string) ([]*model.Translation, error) {
			t.Fatal("use case must not be reached without authentication")
			return nil, nil
		},
	}
	r := newAssistantTestRouter(stub, "")

	req := httptest.NewRequest(http.MethodGet, "/api/translations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
