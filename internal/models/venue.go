package models

// Venue is a static point of interest. Venues are loaded once at startup and
// never mutated; their vibe score is computed per request, not stored.
type Venue struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// ScoredVenue is a venue with its vibe score attached.
type ScoredVenue struct {
	Venue
	VibeScore int `json:"vibeScore"`
}
