package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmate/internal/usecase"
)

// ContentHandler serves the curated dashboard content.
type ContentHandler struct {
	content usecase.ContentUseCase
}

func NewContentHandler(content usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{content: content}
}

// GetDestinations handles GET /api/destinations.
func (h *ContentHandler) GetDestinations(c *gin.Context) {
	destinations, err := h.content.Destinations(c.Request.Context())
	if err != nil {
		h.writeContentError(c, "failed to load destinations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// GetCulturalSpots handles GET /api/cultural-spots.
func (h *ContentHandler) GetCulturalSpots(c *gin.Context) {
	spots, err := h.content.CulturalSpots(c.Request.Context())
	if err != nil {
		h.writeContentError(c, "failed to load cultural spots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cultural_spots": spots})
}

// GetEvents handles GET /api/events.
func (h *ContentHandler) GetEvents(c *gin.Context) {
	events, err := h.content.Events(c.Request.Context())
	if err != nil {
		h.writeContentError(c, "failed to load events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetTravelTip handles GET /api/travel-tips/random.
func (h *ContentHandler) GetTravelTip(c *gin.Context) {
	tip, err := h.content.TravelTip(c.Request.Context())
	if err != nil {
		h.writeContentError(c, "failed to load travel tip")
		return
	}
	c.JSON(http.StatusOK, tip)
}

func (h *ContentHandler) writeContentError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": message,
	})
}
