package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/paulmach/orb"

	"travelmate/internal/domain/model"
)

const defaultDirectionsBaseURL = "https://api.mapbox.com/directions/v5/mapbox/driving"

// MapboxDirectionsProvider fetches drivable paths from the Mapbox
// Directions API, driving profile.
type MapboxDirectionsProvider struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewMapboxDirectionsProvider creates a provider against the public Mapbox API.
func NewMapboxDirectionsProvider(accessToken string) *MapboxDirectionsProvider {
	return NewMapboxDirectionsProviderWithBaseURL(accessToken, defaultDirectionsBaseURL)
}

// NewMapboxDirectionsProviderWithBaseURL allows pointing the provider at a
// different endpoint, used by tests.
func NewMapboxDirectionsProviderWithBaseURL(accessToken, baseURL string) *MapboxDirectionsProvider {
	return &MapboxDirectionsProvider{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetDrivingRoute returns the provider's path geometry between the two
// coordinates, in the provider's order with the origin first.
func (m *MapboxDirectionsProvider) GetDrivingRoute(ctx context.Context, origin, destination orb.Point) (model.Route, error) {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("geometries", "geojson")
	params.Set("steps", "false")
	reqURL := fmt.Sprintf("%s/%f,%f;%f,%f?%s",
		m.baseURL,
		origin.Lon(), origin.Lat(),
		destination.Lon(), destination.Lat(),
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: directions request: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: directions returned %s", model.ErrProviderUnavailable, resp.Status)
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid directions response: %v", model.ErrProviderUnavailable, err)
	}

	if len(parsed.Routes) == 0 {
		return nil, model.ErrNoRouteFound
	}
	coords := parsed.Routes[0].Geometry.Coordinates
	if len(coords) < 2 {
		return nil, model.ErrNoRouteFound
	}

	route := make(model.Route, len(coords))
	for i, c := range coords {
		route[i] = orb.Point{c[0], c[1]}
	}
	return route, nil
}

// --- Mapbox Directions API response structures ---

type directionsResponse struct {
	Routes []directionsRoute `json:"routes"`
	Code   string            `json:"code"`
}

type directionsRoute struct {
	Geometry directionsGeometry `json:"geometry"`
}

type directionsGeometry struct {
	Coordinates [][2]float64 `json:"coordinates"` // [longitude, latitude] pairs
}
