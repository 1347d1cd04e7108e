package model

import "time"

// Trip is a user-saved trip document.
type Trip struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"user_id" firestore:"userId"`
	TripName    string    `json:"trip_name" firestore:"tripName"`
	Destination string    `json:"destination" firestore:"destination"`
	StartDate   string    `json:"start_date" firestore:"startDate"`
	EndDate     string    `json:"end_date" firestore:"endDate"`
	Notes       string    `json:"notes,omitempty" firestore:"notes"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SavedRoute is the record persisted after a successful planning
// submission. It is created once and never updated.
type SavedRoute struct {
	ID               string    `json:"id" firestore:"-"`
	UserID           string    `json:"user_id" firestore:"userId"`
	StartLocation    string    `json:"start_location" firestore:"startLocation"`
	EndLocation      string    `json:"end_location" firestore:"endLocation"`
	PointsOfInterest []string  `json:"points_of_interest" firestore:"pointsOfInterest"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
}

// Translation is one saved cultural-advice exchange.
type Translation struct {
	ID                 string    `json:"id" firestore:"-"`
	UserID             string    `json:"user_id" firestore:"userId"`
	OriginCountry      string    `json:"origin_country" firestore:"originCountry"`
	DestinationCountry string    `json:"destination_country" firestore:"destinationCountry"`
	Question           string    `json:"question" firestore:"question"`
	Response           string    `json:"response" firestore:"response"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
}

// UserProfile is the per-user profile document, keyed by the auth user id.
type UserProfile struct {
	ID          string    `json:"id" firestore:"-"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Email       string    `json:"email" firestore:"email"`
	HomeCountry string    `json:"home_country,omitempty" firestore:"homeCountry"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
