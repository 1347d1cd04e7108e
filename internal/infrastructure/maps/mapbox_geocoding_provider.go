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

const defaultGeocodingBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxGeocodingProvider resolves place names to coordinates and back
// using the Mapbox Geocoding API.
type MapboxGeocodingProvider struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewMapboxGeocodingProvider creates a provider against the public Mapbox API.
func NewMapboxGeocodingProvider(accessToken string) *MapboxGeocodingProvider {
	return NewMapboxGeocodingProviderWithBaseURL(accessToken, defaultGeocodingBaseURL)
}

// NewMapboxGeocodingProviderWithBaseURL allows pointing the provider at a
// different endpoint, used by tests.
func NewMapboxGeocodingProviderWithBaseURL(accessToken, baseURL string) *MapboxGeocodingProvider {
	return &MapboxGeocodingProvider{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode resolves free text to the top match's coordinate.
func (m *MapboxGeocodingProvider) Geocode(ctx context.Context, query string) (orb.Point, error) {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/%s.json?%s", m.baseURL, url.PathEscape(query), params.Encode())

	resp, err := m.fetch(ctx, reqURL)
	if err != nil {
		return orb.Point{}, err
	}
	if len(resp.Features) == 0 {
		return orb.Point{}, fmt.Errorf("%w: %q", model.ErrLocationNotFound, query)
	}

	center := resp.Features[0].Center
	return orb.Point{center[0], center[1]}, nil
}

// ReverseGeocodePlace resolves a coordinate to the display name of the
// nearest place-level match (city or town, not street addresses).
func (m *MapboxGeocodingProvider) ReverseGeocodePlace(ctx context.Context, point orb.Point) (string, error) {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("types", "place")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/%f,%f.json?%s", m.baseURL, point.Lon(), point.Lat(), params.Encode())

	resp, err := m.fetch(ctx, reqURL)
	if err != nil {
		return "", err
	}
	if len(resp.Features) == 0 {
		return "", fmt.Errorf("%w: no place near (%f, %f)", model.ErrLocationNotFound, point.Lon(), point.Lat())
	}

	return resp.Features[0].Text, nil
}

func (m *MapboxGeocodingProvider) fetch(ctx context.Context, reqURL string) (*geocodingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding request: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocoding returned %s", model.ErrProviderUnavailable, resp.Status)
	}

	var parsed geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid geocoding response: %v", model.ErrProviderUnavailable, err)
	}
	return &parsed, nil
}

// --- Mapbox Geocoding API response structures ---

type geocodingResponse struct {
	Features []geocodingFeature `json:"features"`
}

type geocodingFeature struct {
	Text      string     `json:"text"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"` // [longitude, latitude]
}
