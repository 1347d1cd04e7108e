package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain/model"
	"travelmate/internal/usecase"
)

// RouteHandler exposes the route-planning API.
type RouteHandler struct {
	planning usecase.RoutePlanningUseCase
}

func NewRouteHandler(planning usecase.RoutePlanningUseCase) *RouteHandler {
	return &RouteHandler{planning: planning}
}

// PostPlanRoute handles POST /api/routes/plan.
func (h *RouteHandler) PostPlanRoute(c *gin.Context) {
	var req model.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "invalid JSON body: " + err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.StartLocation) == "" || strings.TrimSpace(req.EndLocation) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "please enter both start and end locations",
		})
		return
	}

	response, err := h.planning.PlanRoute(c.Request.Context(), CurrentUserID(c), req.StartLocation, req.EndLocation)
	if err != nil {
		h.writePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// writePlanError maps pipeline outcomes to stage-specific messages.
func (h *RouteHandler) writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyLocation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "please enter both start and end locations",
		})
	case errors.Is(err, model.ErrLocationNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "location_not_found",
			"message": "unable to find start or end location, please check your input",
		})
	case errors.Is(err, model.ErrNoRouteFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "no_route_found",
			"message": "could not calculate a drivable route between locations",
		})
	case errors.Is(err, model.ErrPlanSuperseded):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "superseded",
			"message": "a newer planning request replaced this one",
		})
	case errors.Is(err, model.ErrProviderUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_unavailable",
			"message": "failed to calculate route, please try again",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to calculate route, please try again",
		})
	}
}

// GetSavedRoutes handles GET /api/routes.
func (h *RouteHandler) GetSavedRoutes(c *gin.Context) {
	routes, err := h.planning.ListSavedRoutes(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to load planning history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
