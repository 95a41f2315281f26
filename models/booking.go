package models

// Booking lifecycle states used by both vehicle and tour bookings.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingActive    = "ACTIVE"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

// VehicleBooking is a rental booking as returned by the bookings endpoints.
// Times are passed through in the backend's own string encoding.
type VehicleBooking struct {
	ID         int64   `json:"id"`
	VehicleID  int64   `json:"vehicleId"`
	Username   string  `json:"username,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

// VehicleBookingRequest creates a rental booking.
type VehicleBookingRequest struct {
	VehicleID int64  `json:"vehicleId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResult answers GET /bookings/check-availability.
type AvailabilityResult struct {
	Available bool    `json:"available"`
	Price     float64 `json:"price,omitempty"`
}
