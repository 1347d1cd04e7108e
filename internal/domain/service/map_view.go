package service

import (
	"github.com/paulmach/orb"

	"travelmate/internal/domain/model"
)

// Defaults for the map camera when there is nothing to show yet.
var defaultMapCenter = orb.Point{12, 48} // Mediterranean, for a global feel

const (
	defaultMapZoom = 6

	// Viewport fitting parameters. The zoom ceiling keeps a pair of nearby
	// markers from over-zooming; the duration makes the camera move animated
	// so the user keeps their orientation.
	fitPaddingPx    = 100
	fitMaxZoom      = 10
	fitDurationMS   = 2000
	boundsPadDegree = 0.001
)

// Marker styles keyed by role.
const (
	startMarkerColor = "#22c55e"
	stopMarkerColor  = "#38bdf8"
	endMarkerColor   = "#f59e42"

	startMarkerIcon = "🚩"
	stopMarkerIcon  = "📍"
	endMarkerIcon   = "🏁"
)

// RenderMapView builds a complete map view from a route and its marker
// list. It is a pure function: every call returns a fresh view that fully
// replaces whatever was rendered before, so no stale markers or path
// segments can survive a re-render.
func RenderMapView(route model.Route, markers []model.POI) *model.MapView {
	view := &model.MapView{
		Markers: make([]model.MapMarker, 0, len(markers)),
	}

	for _, poi := range markers {
		view.Markers = append(view.Markers, styleMarker(poi))
	}

	// A path needs at least two points to draw.
	if len(route) >= 2 {
		path := make(orb.LineString, len(route))
		copy(path, route)
		view.Path = path
	}

	if len(markers) > 0 {
		view.Viewport = fitViewport(markers)
	} else {
		view.Viewport = model.Viewport{
			Center: defaultMapCenter,
			Zoom:   defaultMapZoom,
		}
	}

	return view
}

func styleMarker(poi model.POI) model.MapMarker {
	marker := model.MapMarker{
		Name:       poi.Name,
		Coordinate: poi.Coordinate,
		Role:       poi.Role,
		Color:      stopMarkerColor,
		Icon:       stopMarkerIcon,
	}
	switch poi.Role {
	case model.RoleStart:
		marker.Color = startMarkerColor
		marker.Icon = startMarkerIcon
	case model.RoleEnd:
		marker.Color = endMarkerColor
		marker.Icon = endMarkerIcon
	}
	return marker
}

// fitViewport computes a bounding box over all marker coordinates and the
// camera parameters to fit it.
func fitViewport(markers []model.POI) model.Viewport {
	bound := orb.Bound{Min: markers[0].Coordinate, Max: markers[0].Coordinate}
	for _, poi := range markers[1:] {
		bound = bound.Extend(poi.Coordinate)
	}
	bound = bound.Pad(boundsPadDegree)

	center := bound.Center()
	return model.Viewport{
		Center: center,
		Zoom:   defaultMapZoom,
		Bounds: &model.Bounds{
			SouthWest: bound.Min,
			NorthEast: bound.Max,
		},
		PaddingPx:  fitPaddingPx,
		MaxZoom:    fitMaxZoom,
		DurationMS: fitDurationMS,
	}
}
