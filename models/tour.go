package models

// ItineraryDay is one day of a tour package itinerary.
type ItineraryDay struct {
	DayNumber   int    `json:"dayNumber"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	MealPlan    string `json:"mealPlan,omitempty"`
}

// TourPackage is a multi-day tour listing.
type TourPackage struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	DurationDays       int            `json:"durationDays"`
	StartingLocation   string         `json:"startingLocation,omitempty"`
	EndingLocation     string         `json:"endingLocation,omitempty"`
	BasePricePerPerson float64        `json:"basePricePerPerson"`
	MaxGroupSize       int            `json:"maxGroupSize,omitempty"`
	Highlights         []string       `json:"highlights,omitempty"`
	ImageURLs          []string       `json:"imageUrls,omitempty"`
	AvailableDates     []string       `json:"availableDates,omitempty"`
	Itinerary          []ItineraryDay `json:"itinerary,omitempty"`
}

// TourAvailability answers GET /tours/{id}/availability.
type TourAvailability struct {
	Available  bool    `json:"available"`
	SpotsLeft  int     `json:"spotsLeft,omitempty"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

// TourBookingRequest books a tour departure. The backend takes these as
// query parameters on POST /tours/{id}/book.
type TourBookingRequest struct {
	Date         string
	Adults       int
	Children     int
	ContactName  string
	ContactEmail string
	ContactPhone string
}

// TourBookingConfirmation is the booking receipt.
type TourBookingConfirmation struct {
	BookingID  string  `json:"bookingId"`
	TotalPrice float64 `json:"totalPrice"`
}

// TourBooking is an existing tour booking (user history and admin list).
type TourBooking struct {
	BookingID  string  `json:"bookingId"`
	TourID     int64   `json:"tourId,omitempty"`
	TourName   string  `json:"tourName,omitempty"`
	Date       string  `json:"date"`
	Guests     int     `json:"guests,omitempty"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}
