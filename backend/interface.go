package backend

import (
	"context"

	"roamify/models"
)

// Each interface below is a domain API module: a flat set of calls mapping
// 1:1 to backend endpoints, with no business logic of its own. Services and
// handlers depend on these so tests can substitute mocks.

type VehicleAPI interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id int64) (*models.Vehicle, error)
	Available(ctx context.Context) ([]models.Vehicle, error)
	Nearby(ctx context.Context, latitude, longitude, radius float64) ([]models.Vehicle, error)
	Create(ctx context.Context, in models.VehicleInput) (*models.Vehicle, error)
	Favorite(ctx context.Context, id int64) error
	Unfavorite(ctx context.Context, id int64) error
}

type BookingAPI interface {
	CheckAvailability(ctx context.Context, vehicleID int64, startTime, endTime string) (*models.AvailabilityResult, error)
	Create(ctx context.Context, req models.VehicleBookingRequest) (*models.VehicleBooking, error)
	List(ctx context.Context) ([]models.VehicleBooking, error)
	ListForUser(ctx context.Context) ([]models.VehicleBooking, error)
	Cancel(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) (*models.VehicleBooking, error)
}

type AuthAPI interface {
	SignIn(ctx context.Context, creds models.Credentials) (*models.SignInResponse, error)
	SignUp(ctx context.Context, req models.SignupRequest) error
	VendorSignUp(ctx context.Context, req models.VendorSignupRequest) error
}

// HiddenGemQuery carries the list filters; zero values are omitted from the
// request.
type HiddenGemQuery struct {
	Page            int
	Size            int
	Sort            string
	Search          string
	StateID         int64
	AdventureTypeID int64
	Difficulty      string
}

type HiddenGemAPI interface {
	List(ctx context.Context, q HiddenGemQuery) (*models.HiddenGemPage, error)
	Get(ctx context.Context, id int64) (*models.HiddenGem, error)
	States(ctx context.Context) ([]models.State, error)
	AdventureTypes(ctx context.Context) ([]models.AdventureType, error)
	Bookmark(ctx context.Context, id int64) error
	Unbookmark(ctx context.Context, id int64) error
}

type TourAPI interface {
	List(ctx context.Context) ([]models.TourPackage, error)
	Get(ctx context.Context, id int64) (*models.TourPackage, error)
	Availability(ctx context.Context, id int64, date string, guests int) (*models.TourAvailability, error)
	Book(ctx context.Context, id int64, req models.TourBookingRequest) (*models.TourBookingConfirmation, error)
	MyBookings(ctx context.Context) ([]models.TourBooking, error)
}

type UserAPI interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error)
	BookmarkedGems(ctx context.Context) ([]models.HiddenGem, error)
	FavoriteVehicles(ctx context.Context) ([]models.Vehicle, error)
}

type AdminAPI interface {
	ListTours(ctx context.Context) ([]models.TourPackage, error)
	CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error)
	UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error)
	DeleteTour(ctx context.Context, id int64) error

	ListHiddenGems(ctx context.Context, q HiddenGemQuery) (*models.HiddenGemPage, error)
	GetHiddenGem(ctx context.Context, id int64) (*models.HiddenGem, error)
	CreateHiddenGem(ctx context.Context, g models.HiddenGemInput) (*models.HiddenGem, error)
	UpdateHiddenGem(ctx context.Context, id int64, g models.HiddenGemInput) (*models.HiddenGem, error)
	DeleteHiddenGem(ctx context.Context, id int64) error

	ListTourBookings(ctx context.Context) ([]models.TourBooking, error)
	GetTourBooking(ctx context.Context, id string) (*models.TourBooking, error)
	UpdateTourBookingStatus(ctx context.Context, id, status string) (*models.TourBooking, error)
	CancelTourBooking(ctx context.Context, id string) error

	ListVendorRequests(ctx context.Context, status string) ([]models.VendorRegistrationRequest, error)
	ApproveVendor(ctx context.Context, id int64) error
	RejectVendor(ctx context.Context, id int64, reason string) error
}

type VendorAPI interface {
	DashboardSummary(ctx context.Context) (*models.VendorDashboardSummary, error)
	DashboardBookings(ctx context.Context) ([]models.TourBooking, error)

	ListTours(ctx context.Context) ([]models.TourPackage, error)
	CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error)
	UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error)
	DeleteTour(ctx context.Context, id int64) error

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, v models.VehicleInput) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
}

// API bundles every domain module behind one constructor so main.go can wire
// the whole contract layer from a single client.
type API struct {
	Vehicles   VehicleAPI
	Bookings   BookingAPI
	Auth       AuthAPI
	HiddenGems HiddenGemAPI
	Tours      TourAPI
	Users      UserAPI
	Admin      AdminAPI
	Vendor     VendorAPI
}

func NewAPI(c *Client) *API {
	return &API{
		Vehicles:   &vehicleAPI{c: c},
		Bookings:   &bookingAPI{c: c},
		Auth:       &authAPI{c: c},
		HiddenGems: &hiddenGemAPI{c: c},
		Tours:      &tourAPI{c: c},
		Users:      &userAPI{c: c},
		Admin:      &adminAPI{c: c},
		Vendor:     &vendorAPI{c: c},
	}
}
