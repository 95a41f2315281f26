// Package mocks provides testify mocks for the backend domain API modules.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roamify/backend"
	"roamify/models"
)

type MockVehicleAPI struct {
	mock.Mock
}

func (m *MockVehicleAPI) List(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleAPI) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleAPI) Available(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleAPI) Nearby(ctx context.Context, latitude, longitude, radius float64) ([]models.Vehicle, error) {
	args := m.Called(ctx, latitude, longitude, radius)
	if v := args.Get(0); v != nil {
		return v.([]models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleAPI) Create(ctx context.Context, in models.VehicleInput) (*models.Vehicle, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleAPI) Favorite(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleAPI) Unfavorite(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) CheckAvailability(ctx context.Context, vehicleID int64, startTime, endTime string) (*models.AvailabilityResult, error) {
	args := m.Called(ctx, vehicleID, startTime, endTime)
	if v := args.Get(0); v != nil {
		return v.(*models.AvailabilityResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingAPI) Create(ctx context.Context, req models.VehicleBookingRequest) (*models.VehicleBooking, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.VehicleBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingAPI) List(ctx context.Context) ([]models.VehicleBooking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.VehicleBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingAPI) ListForUser(ctx context.Context) ([]models.VehicleBooking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.VehicleBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingAPI) Cancel(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingAPI) UpdateStatus(ctx context.Context, id int64, status string) (*models.VehicleBooking, error) {
	args := m.Called(ctx, id, status)
	if v := args.Get(0); v != nil {
		return v.(*models.VehicleBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) SignIn(ctx context.Context, creds models.Credentials) (*models.SignInResponse, error) {
	args := m.Called(ctx, creds)
	if v := args.Get(0); v != nil {
		return v.(*models.SignInResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthAPI) SignUp(ctx context.Context, req models.SignupRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthAPI) VendorSignUp(ctx context.Context, req models.VendorSignupRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockHiddenGemAPI struct {
	mock.Mock
}

func (m *MockHiddenGemAPI) List(ctx context.Context, q backend.HiddenGemQuery) (*models.HiddenGemPage, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGemPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHiddenGemAPI) Get(ctx context.Context, id int64) (*models.HiddenGem, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHiddenGemAPI) States(ctx context.Context) ([]models.State, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.State), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHiddenGemAPI) AdventureTypes(ctx context.Context) ([]models.AdventureType, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.AdventureType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHiddenGemAPI) Bookmark(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHiddenGemAPI) Unbookmark(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTourAPI struct {
	mock.Mock
}

func (m *MockTourAPI) List(ctx context.Context) ([]models.TourPackage, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTourAPI) Get(ctx context.Context, id int64) (*models.TourPackage, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTourAPI) Availability(ctx context.Context, id int64, date string, guests int) (*models.TourAvailability, error) {
	args := m.Called(ctx, id, date, guests)
	if v := args.Get(0); v != nil {
		return v.(*models.TourAvailability), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTourAPI) Book(ctx context.Context, id int64, req models.TourBookingRequest) (*models.TourBookingConfirmation, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.TourBookingConfirmation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTourAPI) MyBookings(ctx context.Context) ([]models.TourBooking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) Profile(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) BookmarkedGems(ctx context.Context) ([]models.HiddenGem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.HiddenGem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserAPI) FavoriteVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAdminAPI struct {
	mock.Mock
}

func (m *MockAdminAPI) ListTours(ctx context.Context) ([]models.TourPackage, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error) {
	args := m.Called(ctx, t)
	if v := args.Get(0); v != nil {
		return v.(*models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error) {
	args := m.Called(ctx, id, t)
	if v := args.Get(0); v != nil {
		return v.(*models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) DeleteTour(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminAPI) ListHiddenGems(ctx context.Context, q backend.HiddenGemQuery) (*models.HiddenGemPage, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGemPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) GetHiddenGem(ctx context.Context, id int64) (*models.HiddenGem, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) CreateHiddenGem(ctx context.Context, g models.HiddenGemInput) (*models.HiddenGem, error) {
	args := m.Called(ctx, g)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) UpdateHiddenGem(ctx context.Context, id int64, g models.HiddenGemInput) (*models.HiddenGem, error) {
	args := m.Called(ctx, id, g)
	if v := args.Get(0); v != nil {
		return v.(*models.HiddenGem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) DeleteHiddenGem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminAPI) ListTourBookings(ctx context.Context) ([]models.TourBooking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) GetTourBooking(ctx context.Context, id string) (*models.TourBooking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.TourBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) UpdateTourBookingStatus(ctx context.Context, id, status string) (*models.TourBooking, error) {
	args := m.Called(ctx, id, status)
	if v := args.Get(0); v != nil {
		return v.(*models.TourBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) CancelTourBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminAPI) ListVendorRequests(ctx context.Context, status string) ([]models.VendorRegistrationRequest, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]models.VendorRegistrationRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminAPI) ApproveVendor(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminAPI) RejectVendor(ctx context.Context, id int64, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

type MockVendorAPI struct {
	mock.Mock
}

func (m *MockVendorAPI) DashboardSummary(ctx context.Context) (*models.VendorDashboardSummary, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*models.VendorDashboardSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) DashboardBookings(ctx context.Context) ([]models.TourBooking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) ListTours(ctx context.Context) ([]models.TourPackage, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error) {
	args := m.Called(ctx, t)
	if v := args.Get(0); v != nil {
		return v.(*models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error) {
	args := m.Called(ctx, id, t)
	if v := args.Get(0); v != nil {
		return v.(*models.TourPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) DeleteTour(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVendorAPI) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) CreateVehicle(ctx context.Context, v models.VehicleInput) (*models.Vehicle, error) {
	args := m.Called(ctx, v)
	if out := args.Get(0); out != nil {
		return out.(*models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) UpdateVehicle(ctx context.Context, id int64, v models.VehicleInput) (*models.Vehicle, error) {
	args := m.Called(ctx, id, v)
	if out := args.Get(0); out != nil {
		return out.(*models.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorAPI) DeleteVehicle(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
