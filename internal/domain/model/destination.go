package model

// Curated dashboard content, served from Postgres.

// Destination is a curated place to visit.
type Destination struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"image_url" db:"image_url"`
}

// CulturalSpot is a curated cultural or historical site.
type CulturalSpot struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	ImageURL string `json:"image_url" db:"image_url"`
}

// Event is an upcoming festival or happening worth traveling for.
type Event struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	DateText string `json:"date" db:"date_text"`
	Location string `json:"location" db:"location"`
}

// TravelTip is one line of rotating travel advice.
type TravelTip struct {
	ID  int    `json:"id" db:"id"`
	Tip string `json:"tip" db:"tip"`
}
