package models

// Vehicle is a rentable vehicle listing.
type Vehicle struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Type         string  `json:"type"`
	HourlyPrice  float64 `json:"hourlyPrice"`
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// VehicleInput is the create/update payload for admin and vendor listings.
type VehicleInput struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Type         string  `json:"type"`
	HourlyPrice  float64 `json:"hourlyPrice"`
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}
