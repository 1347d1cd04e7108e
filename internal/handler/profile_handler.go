package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain/model"
	"travelmate/internal/usecase"
)

// ProfileHandler exposes the authenticated user's profile.
type ProfileHandler struct {
	profiles usecase.ProfileUseCase
}

func NewProfileHandler(profiles usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, model.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type profileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	HomeCountry string `json:"home_country"`
}

// PutProfile handles PUT /api/profile.
func (h *ProfileHandler) PutProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid profile: " + err.Error(),
		})
		return
	}

	profile := &model.UserProfile{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		HomeCountry: req.HomeCountry,
	}
	if err := h.profiles.SaveProfile(c.Request.Context(), CurrentUserID(c), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
