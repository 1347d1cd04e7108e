package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain/model"
	"travelmate/internal/usecase"
)

// TripHandler exposes CRUD for a user's saved trips.
type TripHandler struct {
	trips usecase.TripsUseCase
}

func NewTripHandler(trips usecase.TripsUseCase) *TripHandler {
	return &TripHandler{trips: trips}
}

type tripRequest struct {
	TripName    string `json:"trip_name" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Notes       string `json:"notes"`
}

// PostTrip handles POST /api/trips.
func (h *TripHandler) PostTrip(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid trip: " + err.Error(),
		})
		return
	}

	trip := &model.Trip{
		TripName:    req.TripName,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	}
	id, err := h.trips.CreateTrip(c.Request.Context(), CurrentUserID(c), trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to save trip",
		})
		return
	}

	trip.ID = id
	c.JSON(http.StatusCreated, trip)
}

// GetTrips handles GET /api/trips.
func (h *TripHandler) GetTrips(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to load trips",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetTrip handles GET /api/trips/:id.
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.trips.GetTrip(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.writeTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// PutTrip handles PUT /api/trips/:id.
func (h *TripHandler) PutTrip(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid trip: " + err.Error(),
		})
		return
	}

	trip := &model.Trip{
		ID:          c.Param("id"),
		TripName:    req.TripName,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	}
	if err := h.trips.UpdateTrip(c.Request.Context(), CurrentUserID(c), trip); err != nil {
		h.writeTripError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/:id.
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.trips.DeleteTrip(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		h.writeTripError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TripHandler) writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "trip not found",
		})
	case errors.Is(err, model.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "this trip belongs to another user",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "trip operation failed",
		})
	}
}
