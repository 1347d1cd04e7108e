package model

import "github.com/paulmach/orb"

// Route is the drivable path returned by the directions provider.
// Points are in traversal order, origin first, and the slice is never
// mutated after it is produced; a new plan replaces it wholesale.
type Route orb.LineString

// MarkerRole identifies how a point of interest is used on the map.
// The role is assigned once when the marker list is assembled and is
// never derived from the marker's name.
type MarkerRole string

const (
	RoleStart MarkerRole = "start"
	RoleStop  MarkerRole = "stop"
	RoleEnd   MarkerRole = "end"
)

// POI is a named, role-tagged point shown on the map.
type POI struct {
	Name       string     `json:"name"`
	Coordinate orb.Point  `json:"coordinate"` // [longitude, latitude]
	Role       MarkerRole `json:"role"`
}

// MapMarker is a POI with the visual style resolved for rendering.
type MapMarker struct {
	Name       string     `json:"name"`
	Coordinate orb.Point  `json:"coordinate"`
	Role       MarkerRole `json:"role"`
	Color      string     `json:"color"`
	Icon       string     `json:"icon"`
}

// Bounds is a south-west / north-east bounding box for viewport fitting.
type Bounds struct {
	SouthWest orb.Point `json:"south_west"`
	NorthEast orb.Point `json:"north_east"`
}

// Viewport describes where the map camera should end up. When Bounds is
// set the client fits to it with the given padding and zoom ceiling;
// otherwise it centers on Center at Zoom.
type Viewport struct {
	Center     orb.Point `json:"center"`
	Zoom       float64   `json:"zoom"`
	Bounds     *Bounds   `json:"bounds,omitempty"`
	PaddingPx  int       `json:"padding_px,omitempty"`
	MaxZoom    float64   `json:"max_zoom,omitempty"`
	DurationMS int       `json:"duration_ms,omitempty"`
}

// MapView is a complete, self-contained description of one rendered map.
// Every render produces a fresh MapView; the client replaces the previous
// one instead of diffing against it.
type MapView struct {
	Markers  []MapMarker    `json:"markers"`
	Path     orb.LineString `json:"path,omitempty"`
	Viewport Viewport       `json:"viewport"`
}
