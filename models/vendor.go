package models

// Vendor departments.
const (
	DepartmentTour    = "TOUR"
	DepartmentVehicle = "VEHICLE"
)

// VendorSignupRequest registers a vendor account pending admin approval.
type VendorSignupRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	CompanyName  string `json:"companyName"`
	ContactPhone string `json:"contactPhone"`
	Department   string `json:"department"`
}

// VendorRegistrationRequest is a pending/settled vendor application as seen
// by admins.
type VendorRegistrationRequest struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	CompanyName  string `json:"companyName"`
	Department   string `json:"department"`
	Email        string `json:"email"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Status       string `json:"status"`
}

// VendorDashboardSummary mirrors GET /vendor/dashboard/summary.
type VendorDashboardSummary struct {
	Department           string `json:"department"`
	VehiclesCount        int    `json:"vehiclesCount"`
	ToursCount           int    `json:"toursCount"`
	VehicleBookingsCount int    `json:"vehicleBookingsCount"`
	TourBookingsCount    int    `json:"tourBookingsCount"`
}
