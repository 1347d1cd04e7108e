package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain/model"
	"travelmate/internal/usecase"
)

// AssistantHandler exposes the AI-backed endpoints: chat, cultural advice
// and place descriptions.
type AssistantHandler struct {
	assistant usecase.AssistantUseCase
}

func NewAssistantHandler(assistant usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type chatRequest struct {
	Messages []model.ChatMessage `json:"messages"`
}

// PostChat handles POST /api/chat.
func (h *AssistantHandler) PostChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid JSON body: " + err.Error(),
		})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "at least one message is required",
		})
		return
	}
	for _, msg := range req.Messages {
		if msg.Role != model.ChatRoleUser && msg.Role != model.ChatRoleModel && msg.Role != model.ChatRoleSystem {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": "message role must be user, model or system",
			})
			return
		}
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_unavailable",
			"message": "the assistant is having trouble right now, please try again in a moment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type adviceRequest struct {
	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`
	Question           string `json:"question"`
}

// PostAdvice handles POST /api/advice.
func (h *AssistantHandler) PostAdvice(c *gin.Context) {
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid JSON body: " + err.Error(),
		})
		return
	}
	if req.OriginCountry == "" || req.DestinationCountry == "" || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "please fill in all fields",
		})
		return
	}

	response, err := h.assistant.CulturalAdvice(c.Request.Context(), CurrentUserID(c),
		req.OriginCountry, req.DestinationCountry, req.Question)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_unavailable",
			"message": "failed to generate advice, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// GetPlaceDescription handles GET /api/places/:name/description.
func (h *AssistantHandler) GetPlaceDescription(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "place name is required",
		})
		return
	}

	description, err := h.assistant.DescribePlace(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_unavailable",
			"message": "failed to describe place, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, description)
}

// GetTranslations handles GET /api/translations.
func (h *AssistantHandler) GetTranslations(c *gin.Context) {
	translations, err := h.assistant.ListTranslations(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to load translations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translations": translations})
}
