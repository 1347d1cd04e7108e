package usecase

import (
	"context"
	"fmt"
	"log"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
	"travelmate/internal/domain/service"
)

// RoutePlanningUseCase drives the planning pipeline and the planning history.
type RoutePlanningUseCase interface {
	// PlanRoute runs one planning submission end to end and returns the
	// renderable result.
	PlanRoute(ctx context.Context, userID, startLocation, endLocation string) (*model.PlanRouteResponse, error)

	// ListSavedRoutes returns the user's planning history, newest first.
	ListSavedRoutes(ctx context.Context, userID string) ([]*model.SavedRoute, error)
}

type routePlanningUseCaseImpl struct {
	planner *service.RoutePlanner
	routes  repository.SavedRoutesRepository
}

func NewRoutePlanningUseCase(planner *service.RoutePlanner, routes repository.SavedRoutesRepository) RoutePlanningUseCase {
	return &routePlanningUseCaseImpl{
		planner: planner,
		routes:  routes,
	}
}

func (u *routePlanningUseCaseImpl) PlanRoute(ctx context.Context, userID, startLocation, endLocation string) (*model.PlanRouteResponse, error) {
	result, err := u.planner.Plan(ctx, &service.PlanRequest{
		UserID:        userID,
		StartLocation: startLocation,
		EndLocation:   endLocation,
	})
	if err != nil {
		return nil, err
	}

	stops := make([]string, 0, len(result.Markers))
	for _, marker := range result.Markers {
		if marker.Role == model.RoleStop {
			stops = append(stops, marker.Name)
		}
	}
	log.Printf("route planned: %q -> %q (%d points, %d stops)",
		startLocation, endLocation, len(result.Route), len(stops))

	return &model.PlanRouteResponse{
		Map:              result.View,
		PointsOfInterest: stops,
	}, nil
}

func (u *routePlanningUseCaseImpl) ListSavedRoutes(ctx context.Context, userID string) ([]*model.SavedRoute, error) {
	routes, err := u.routes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planning history: %w", err)
	}
	return routes, nil
}
