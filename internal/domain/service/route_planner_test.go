package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/model"
)

type stubGeocoder struct {
	geocodeFn func(ctx context.Context, query string) (orb.Point, error)
	reverseFn func(ctx context.Context, point orb.Point) (string, error)

	mu           sync.Mutex
	geocodeCalls []string
	reverseCalls []orb.Point
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (orb.Point, error) {
	s.mu.Lock()
	s.geocodeCalls = append(s.geocodeCalls, query)
	s.mu.Unlock()
	return s.geocodeFn(ctx, query)
}

func (s *stubGeocoder) ReverseGeocodePlace(ctx context.Context, point orb.Point) (string, error) {
	s.mu.Lock()
	s.reverseCalls = append(s.reverseCalls, point)
	s.mu.Unlock()
	if s.reverseFn == nil {
		return "", model.ErrLocationNotFound
	}
	return s.reverseFn(ctx, point)
}

type stubDirections struct {
	routeFn func(ctx context.Context, origin, destination orb.Point) (model.Route, error)

	mu    sync.Mutex
	calls int
}

func (s *stubDirections) GetDrivingRoute(ctx context.Context, origin, destination orb.Point) (model.Route, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.routeFn(ctx, origin, destination)
}

type stubRoutesRepo struct {
	createErr error
	saved     chan *model.SavedRoute
}

func newStubRoutesRepo() *stubRoutesRepo {
	return &stubRoutesRepo{saved: make(chan *model.SavedRoute, 1)}
}

func (s *stubRoutesRepo) Create(ctx context.Context, route *model.SavedRoute) (string, error) {
	s.saved <- route
	if s.createErr != nil {
		return "", s.createErr
	}
	return "route_test", nil
}

func (s *stubRoutesRepo) ListByUser(ctx context.Context, userID string) ([]*model.SavedRoute, error) {
	return nil, nil
}

func (s *stubRoutesRepo) awaitSave(t *testing.T) *model.SavedRoute {
	t.Helper()
	select {
	case saved := <-s.saved:
		return saved
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the route to be saved")
		return nil
	}
}

var (
	romePoint  = orb.Point{12.4964, 41.9028}
	parisPoint = orb.Point{2.3522, 48.8566}
)

// knownCities geocodes Rome and Paris and fails everything else.
func knownCities(ctx context.Context, query string) (orb.Point, error) {
	switch query {
	case "Rome":
		return romePoint, nil
	case "Paris":
		return parisPoint, nil
	default:
		return orb.Point{}, model.ErrLocationNotFound
	}
}

// tenPointRoute returns a fixed 10-point route so samples land on
// indices 2, 5 and 8.
func tenPointRoute(ctx context.Context, origin, destination orb.Point) (model.Route, error) {
	route := make(model.Route, 10)
	route[0] = origin
	for i := 1; i < 9; i++ {
		route[i] = orb.Point{float64(i), float64(i)}
	}
	route[9] = destination
	return route, nil
}

func namedStops(ctx context.Context, point orb.Point) (string, error) {
	switch point {
	case orb.Point{2, 2}:
		return "Florence", nil
	case orb.Point{5, 5}:
		return "Milan", nil
	case orb.Point{8, 8}:
		return "Lyon", nil
	default:
		return "", model.ErrLocationNotFound
	}
}

func TestPlanFullPipeline(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities, reverseFn: namedStops}
	directions := &stubDirections{routeFn: tenPointRoute}
	routes := newStubRoutesRepo()
	planner := NewRoutePlanner(geocoder, directions, routes)

	result, err := planner.Plan(context.Background(), &PlanRequest{
		UserID:        "user-1",
		StartLocation: "Rome",
		EndLocation:   "Paris",
	})
	require.NoError(t, err)

	require.Len(t, result.Markers, 5)
	assert.Equal(t, model.POI{Name: "Rome", Coordinate: romePoint, Role: model.RoleStart}, result.Markers[0])
	assert.Equal(t, model.POI{Name: "Florence", Coordinate: orb.Point{2, 2}, Role: model.RoleStop}, result.Markers[1])
	assert.Equal(t, model.POI{Name: "Milan", Coordinate: orb.Point{5, 5}, Role: model.RoleStop}, result.Markers[2])
	assert.Equal(t, model.POI{Name: "Lyon", Coordinate: orb.Point{8, 8}, Role: model.RoleStop}, result.Markers[3])
	assert.Equal(t, model.POI{Name: "Paris", Coordinate: parisPoint, Role: model.RoleEnd}, result.Markers[4])

	require.NotNil(t, result.View)
	assert.Len(t, result.View.Markers, 5)
	assert.Len(t, result.View.Path, 10)
	require.NotNil(t, result.View.Viewport.Bounds)

	saved := routes.awaitSave(t)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "Rome", saved.StartLocation)
	assert.Equal(t, "Paris", saved.EndLocation)
	assert.Equal(t, []string{"Florence", "Milan", "Lyon"}, saved.PointsOfInterest)
}

func TestPlanEmptyLocations(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities}
	directions := &stubDirections{routeFn: tenPointRoute}
	planner := NewRoutePlanner(geocoder, directions, nil)

	cases := []PlanRequest{
		{StartLocation: "", EndLocation: "Paris"},
		{StartLocation: "Rome", EndLocation: ""},
		{StartLocation: "   ", EndLocation: "Paris"},
		{StartLocation: "", EndLocation: ""},
	}
	for _, req := range cases {
		_, err := planner.Plan(context.Background(), &req)
		assert.ErrorIs(t, err, model.ErrEmptyLocation)
	}

	assert.Empty(t, geocoder.geocodeCalls, "validation failures must not reach the geocoder")
	assert.Zero(t, directions.calls)
}

func TestPlanUnknownLocation(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities}
	directions := &stubDirections{routeFn: tenPointRoute}
	planner := NewRoutePlanner(geocoder, directions, nil)

	_, err := planner.Plan(context.Background(), &PlanRequest{
		StartLocation: "Atlantis",
		EndLocation:   "Paris",
	})
	require.ErrorIs(t, err, model.ErrLocationNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Zero(t, directions.calls, "directions must not be requested without both endpoints")
}

func TestPlanDegenerateRoute(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities}
	directions := &stubDirections{
		routeFn: func(ctx context.Context, origin, destination orb.Point) (model.Route, error) {
			return model.Route{origin}, nil
		},
	}
	planner := NewRoutePlanner(geocoder, directions, nil)

	_, err := planner.Plan(context.Background(), &PlanRequest{
		StartLocation: "Rome",
		EndLocation:   "Paris",
	})
	assert.ErrorIs(t, err, model.ErrNoRouteFound)
}

func TestPlanAllStopsUnnamed(t *testing.T) {
	geocoder := &stubGeocoder{
		geocodeFn: knownCities,
		reverseFn: func(ctx context.Context, point orb.Point) (string, error) {
			return "", model.ErrProviderUnavailable
		},
	}
	directions := &stubDirections{routeFn: tenPointRoute}
	planner := NewRoutePlanner(geocoder, directions, nil)

	result, err := planner.Plan(context.Background(), &PlanRequest{
		StartLocation: "Rome",
		EndLocation:   "Paris",
	})
	require.NoError(t, err, "reverse geocoding failures must not fail the plan")

	require.Len(t, result.Markers, 2)
	assert.Equal(t, model.RoleStart, result.Markers[0].Role)
	assert.Equal(t, model.RoleEnd, result.Markers[1].Role)
	assert.Len(t, geocoder.reverseCalls, 3, "every sample is still attempted")
}

func TestPlanTrimsWhitespace(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities, reverseFn: namedStops}
	directions := &stubDirections{routeFn: tenPointRoute}
	planner := NewRoutePlanner(geocoder, directions, nil)

	result, err := planner.Plan(context.Background(), &PlanRequest{
		StartLocation: "  Rome  ",
		EndLocation:   "\tParis\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rome", result.Markers[0].Name)
	assert.Equal(t, "Paris", result.Markers[len(result.Markers)-1].Name)
}

func TestPlanAnonymousSkipsPersistence(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities, reverseFn: namedStops}
	directions := &stubDirections{routeFn: tenPointRoute}
	routes := newStubRoutesRepo()
	planner := NewRoutePlanner(geocoder, directions, routes)

	_, err := planner.Plan(context.Background(), &PlanRequest{
		StartLocation: "Rome",
		EndLocation:   "Paris",
	})
	require.NoError(t, err)

	select {
	case <-routes.saved:
		t.Fatal("anonymous plans must not be persisted")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPlanPersistenceFailureDoesNotFailPlan(t *testing.T) {
	geocoder := &stubGeocoder{geocodeFn: knownCities, reverseFn: namedStops}
	directions := &stubDirections{routeFn: tenPointRoute}
	routes := newStubRoutesRepo()
	routes.createErr = errors.New("firestore unavailable")
	planner := NewRoutePlanner(geocoder, directions, routes)

	result, err := planner.Plan(context.Background(), &PlanRequest{
		UserID:        "user-1",
		StartLocation: "Rome",
		EndLocation:   "Paris",
	})
	require.NoError(t, err)
	assert.Len(t, result.Markers, 5)
	routes.awaitSave(t)
}

func TestPlanSupersededByNewerSubmission(t *testing.T) {
	release := make(chan struct{})
	firstBlocked := make(chan struct{}, 2)

	geocoder := &stubGeocoder{
		reverseFn: namedStops,
		geocodeFn: func(ctx context.Context, query string) (orb.Point, error) {
			if query == "Rome" {
				firstBlocked <- struct{}{}
				<-release
			}
			return knownCities(ctx, query)
		},
	}
	directions := &stubDirections{routeFn: tenPointRoute}
	planner := NewRoutePlanner(geocoder, directions, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := planner.Plan(context.Background(), &PlanRequest{
			UserID:        "user-1",
			StartLocation: "Rome",
			EndLocation:   "Paris",
		})
		errCh <- err
	}()

	// Wait for the first submission to be mid-geocode, then submit again.
	<-firstBlocked
	result, err := planner.Plan(context.Background(), &PlanRequest{
		UserID:        "user-1",
		StartLocation: "Paris",
		EndLocation:   "Paris",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	close(release)
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, model.ErrPlanSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the superseded submission")
	}
}
