package model

// PlanRouteRequest is the submitted planning form.
type PlanRouteRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
}

// PlanRouteResponse carries everything the client needs to show the result:
// the complete map view and the names of the stops found along the way.
type PlanRouteResponse struct {
	Map              *MapView `json:"map"`
	PointsOfInterest []string `json:"points_of_interest"`
}
