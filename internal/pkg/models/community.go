package models

// LeaderboardEntry is one user's community score
type LeaderboardEntry struct {
	UserID string  `json:"user_id" db:"user_id"`
	Score  float64 `json:"score" db:"score"`
}

// ProductScore rates one purchased product by the combined sustainability
// score of the store it was bought at and its brand
type ProductScore struct {
	ProductName string  `json:"product_name" db:"product_name"`
	Store       string  `json:"store" db:"store"`
	Brand       string  `json:"brand" db:"brand"`
	Score       float64 `json:"score" db:"score"`
}

// LeaderboardResponse is returned by the leaderboard endpoint
type LeaderboardResponse struct {
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	UserID          string             `json:"user_id"`
	HarmfulProducts []ProductScore     `json:"harmful_products"`
}

// Place is an eco-friendly business shown on the map
type Place struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// NearbyPlace is a place annotated with its distance from the query point
type NearbyPlace struct {
	Place
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}

// PlacesQuery is a map search around a point
type PlacesQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}
