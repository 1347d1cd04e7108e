package service

import (
	"github.com/paulmach/orb"

	"travelmate/internal/domain/model"
)

// SampleWaypoints selects up to three interior points of a route as
// point-of-interest candidates. Routes with fewer than five points are too
// short to sample; longer routes always yield exactly the points at indices
// N/5, N/2 and 4N/5 (integer division), in that order.
//
// The sampling is index-based on purpose: it spreads candidates along the
// provider's point density, not along physical distance.
func SampleWaypoints(route model.Route) []orb.Point {
	n := len(route)
	if n < 5 {
		return nil
	}

	indices := [3]int{n / 5, n / 2, 4 * n / 5}
	points := make([]orb.Point, 0, len(indices))
	for _, i := range indices {
		points = append(points, route[i])
	}
	return points
}
