package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb"

	"travelmate/internal/domain/model"
	"travelmate/internal/domain/repository"
)

const persistTimeout = 10 * time.Second

// anonymousPlanKey groups unauthenticated submissions for the purpose of
// last-submit-wins cancellation.
const anonymousPlanKey = "anonymous"

// PlanRequest is one planning submission.
type PlanRequest struct {
	UserID        string
	StartLocation string
	EndLocation   string
}

// PlanResult is the assembled outcome of a successful plan.
type PlanResult struct {
	Route   model.Route
	Markers []model.POI
	View    *model.MapView
}

// RoutePlanner runs the planning pipeline for one submission: geocode both
// ends in parallel, fetch a driving route, sample interior waypoints, name
// them, assemble the marker list and render the map view. Persistence of the
// result is fired off separately and never blocks or fails the visible plan.
//
// A new submission by the same user cancels any submission of theirs still
// in flight (last-submit-wins); the superseded request observes
// model.ErrPlanSuperseded and its results are discarded.
type RoutePlanner struct {
	geocoder   repository.GeocodingProvider
	directions repository.DirectionsProvider
	routes     repository.SavedRoutesRepository

	mu       sync.Mutex
	inflight map[string]*planToken
}

type planToken struct {
	cancel context.CancelFunc
}

// NewRoutePlanner creates a planner. The routes repository may be nil, in
// which case results are simply not persisted.
func NewRoutePlanner(
	geocoder repository.GeocodingProvider,
	directions repository.DirectionsProvider,
	routes repository.SavedRoutesRepository,
) *RoutePlanner {
	return &RoutePlanner{
		geocoder:   geocoder,
		directions: directions,
		routes:     routes,
		inflight:   make(map[string]*planToken),
	}
}

// Plan runs the full pipeline for one submission.
func (p *RoutePlanner) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	if start == "" || end == "" {
		return nil, model.ErrEmptyLocation
	}

	ctx, token := p.begin(ctx, planKey(req.UserID))
	defer p.finish(planKey(req.UserID), token)

	// Geocode origin and destination concurrently; neither depends on the
	// other. Both results are awaited before deciding the outcome.
	type geocodeResult struct {
		point orb.Point
		err   error
	}
	startCh := make(chan geocodeResult, 1)
	endCh := make(chan geocodeResult, 1)
	go func() {
		pt, err := p.geocoder.Geocode(ctx, start)
		startCh <- geocodeResult{point: pt, err: err}
	}()
	go func() {
		pt, err := p.geocoder.Geocode(ctx, end)
		endCh <- geocodeResult{point: pt, err: err}
	}()
	startRes, endRes := <-startCh, <-endCh

	if err := p.superseded(ctx); err != nil {
		return nil, err
	}
	if startRes.err != nil {
		return nil, fmt.Errorf("start location %q: %w", start, startRes.err)
	}
	if endRes.err != nil {
		return nil, fmt.Errorf("end location %q: %w", end, endRes.err)
	}

	route, err := p.directions.GetDrivingRoute(ctx, startRes.point, endRes.point)
	if err2 := p.superseded(ctx); err2 != nil {
		return nil, err2
	}
	if err != nil {
		return nil, fmt.Errorf("route %q -> %q: %w", start, end, err)
	}
	if len(route) < 2 {
		return nil, fmt.Errorf("route %q -> %q: %w", start, end, model.ErrNoRouteFound)
	}

	samples := SampleWaypoints(route)
	stops := p.nameStops(ctx, samples)
	if err := p.superseded(ctx); err != nil {
		return nil, err
	}

	markers := make([]model.POI, 0, len(stops)+2)
	markers = append(markers, model.POI{Name: start, Coordinate: startRes.point, Role: model.RoleStart})
	markers = append(markers, stops...)
	markers = append(markers, model.POI{Name: end, Coordinate: endRes.point, Role: model.RoleEnd})

	result := &PlanResult{
		Route:   route,
		Markers: markers,
		View:    RenderMapView(route, markers),
	}

	p.persist(req.UserID, start, end, stops)

	return result, nil
}

// nameStops reverse-geocodes each sampled point independently. A failure
// for one sample never aborts the others; unnamed samples are skipped, so
// the plan degrades to fewer named stops, possibly zero.
func (p *RoutePlanner) nameStops(ctx context.Context, samples []orb.Point) []model.POI {
	var stops []model.POI
	for _, point := range samples {
		name, err := p.geocoder.ReverseGeocodePlace(ctx, point)
		if err != nil {
			log.Printf("skipping unnamed stop at (%f, %f): %v", point.Lon(), point.Lat(), err)
			continue
		}
		stops = append(stops, model.POI{Name: name, Coordinate: point, Role: model.RoleStop})
	}
	return stops
}

// persist saves the planned route in the background. The map the user sees
// is already final at this point; a storage failure is logged and nothing
// else. Without an authenticated user there is nothing to own the record,
// so the save is silently skipped.
func (p *RoutePlanner) persist(userID, start, end string, stops []model.POI) {
	if userID == "" || p.routes == nil {
		return
	}

	names := make([]string, 0, len(stops))
	for _, stop := range stops {
		names = append(names, stop.Name)
	}
	saved := &model.SavedRoute{
		UserID:           userID,
		StartLocation:    start,
		EndLocation:      end,
		PointsOfInterest: names,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if _, err := p.routes.Create(ctx, saved); err != nil {
			log.Printf("failed to save planned route for user %s: %v", userID, err)
		}
	}()
}

func planKey(userID string) string {
	if userID == "" {
		return anonymousPlanKey
	}
	return userID
}

// begin registers this submission as the user's current one, cancelling any
// prior submission still in flight.
func (p *RoutePlanner) begin(ctx context.Context, key string) (context.Context, *planToken) {
	ctx, cancel := context.WithCancel(ctx)
	token := &planToken{cancel: cancel}

	p.mu.Lock()
	if prev, ok := p.inflight[key]; ok {
		prev.cancel()
	}
	p.inflight[key] = token
	p.mu.Unlock()

	return ctx, token
}

func (p *RoutePlanner) finish(key string, token *planToken) {
	p.mu.Lock()
	if p.inflight[key] == token {
		delete(p.inflight, key)
	}
	p.mu.Unlock()
	token.cancel()
}

// superseded reports whether this submission's context has been cancelled,
// which happens when a newer submission from the same user arrived.
func (p *RoutePlanner) superseded(ctx context.Context) error {
	if ctx.Err() != nil {
		return model.ErrPlanSuperseded
	}
	return nil
}
