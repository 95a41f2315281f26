// Package admin holds the admin dashboard logic. Every mutation refreshes
// the affected list so the dashboard always renders the backend's view of
// the world, never a locally patched copy.
package admin

import (
	"context"

	"roamify/backend"
	"roamify/models"
)

type Service interface {
	Tours(ctx context.Context) ([]models.TourPackage, error)
	CreateTour(ctx context.Context, t models.TourPackage) ([]models.TourPackage, error)
	UpdateTour(ctx context.Context, id int64, t models.TourPackage) ([]models.TourPackage, error)
	DeleteTour(ctx context.Context, id int64) ([]models.TourPackage, error)

	HiddenGems(ctx context.Context, q backend.HiddenGemQuery) (*models.HiddenGemPage, error)
	CreateHiddenGem(ctx context.Context, g models.HiddenGemInput) (*models.HiddenGem, error)
	UpdateHiddenGem(ctx context.Context, id int64, g models.HiddenGemInput) (*models.HiddenGem, error)
	DeleteHiddenGem(ctx context.Context, id int64) error

	TourBookings(ctx context.Context) ([]models.TourBooking, error)
	UpdateTourBookingStatus(ctx context.Context, id, status string) ([]models.TourBooking, error)
	CancelTourBooking(ctx context.Context, id string) ([]models.TourBooking, error)

	VehicleBookings(ctx context.Context) ([]models.VehicleBooking, error)
	UpdateVehicleBookingStatus(ctx context.Context, id int64, status string) ([]models.VehicleBooking, error)
	CancelVehicleBooking(ctx context.Context, id int64) ([]models.VehicleBooking, error)

	CreateVehicle(ctx context.Context, v models.VehicleInput) (*models.Vehicle, error)

	PendingVendors(ctx context.Context, status string) ([]models.VendorRegistrationRequest, error)
	ApproveVendor(ctx context.Context, id int64) ([]models.VendorRegistrationRequest, error)
	RejectVendor(ctx context.Context, id int64, reason string) ([]models.VendorRegistrationRequest, error)
}

type DefaultService struct {
	Admin    backend.AdminAPI
	Vehicles backend.VehicleAPI
	Bookings backend.BookingAPI
}

func (s *DefaultService) Tours(ctx context.Context) ([]models.TourPackage, error) {
	tours, err := s.Admin.ListTours(ctx)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.TourPackage{}
	}
	return tours, nil
}

func (s *DefaultService) CreateTour(ctx context.Context, t models.TourPackage) ([]models.TourPackage, error) {
	if _, err := s.Admin.CreateTour(ctx, t); err != nil {
		return nil, err
	}
	return s.Tours(ctx)
}

func (s *DefaultService) UpdateTour(ctx context.Context, id int64, t models.TourPackage) ([]models.TourPackage, error) {
	if _, err := s.Admin.UpdateTour(ctx, id, t); err != nil {
		return nil, err
	}
	return s.Tours(ctx)
}

func (s *DefaultService) DeleteTour(ctx context.Context, id int64) ([]models.TourPackage, error) {
	if err := s.Admin.DeleteTour(ctx, id); err != nil {
		return nil, err
	}
	return s.Tours(ctx)
}

func (s *DefaultService) HiddenGems(ctx context.Context, q backend.HiddenGemQuery) (*models.HiddenGemPage, error) {
	return s.Admin.ListHiddenGems(ctx, q)
}

func (s *DefaultService) CreateHiddenGem(ctx context.Context, g models.HiddenGemInput) (*models.HiddenGem, error) {
	return s.Admin.CreateHiddenGem(ctx, g)
}

func (s *DefaultService) UpdateHiddenGem(ctx context.Context, id int64, g models.HiddenGemInput) (*models.HiddenGem, error) {
	return s.Admin.UpdateHiddenGem(ctx, id, g)
}

func (s *DefaultService) DeleteHiddenGem(ctx context.Context, id int64) error {
	return s.Admin.DeleteHiddenGem(ctx, id)
}

func (s *DefaultService) TourBookings(ctx context.Context) ([]models.TourBooking, error) {
	bookings, err := s.Admin.ListTourBookings(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.TourBooking{}
	}
	return bookings, nil
}

func (s *DefaultService) UpdateTourBookingStatus(ctx context.Context, id, status string) ([]models.TourBooking, error) {
	if _, err := s.Admin.UpdateTourBookingStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.TourBookings(ctx)
}

func (s *DefaultService) CancelTourBooking(ctx context.Context, id string) ([]models.TourBooking, error) {
	if err := s.Admin.CancelTourBooking(ctx, id); err != nil {
		return nil, err
	}
	return s.TourBookings(ctx)
}

func (s *DefaultService) VehicleBookings(ctx context.Context) ([]models.VehicleBooking, error) {
	bookings, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.VehicleBooking{}
	}
	return bookings, nil
}

func (s *DefaultService) UpdateVehicleBookingStatus(ctx context.Context, id int64, status string) ([]models.VehicleBooking, error) {
	if _, err := s.Bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.VehicleBookings(ctx)
}

func (s *DefaultService) CancelVehicleBooking(ctx context.Context, id int64) ([]models.VehicleBooking, error) {
	if err := s.Bookings.Cancel(ctx, id); err != nil {
		return nil, err
	}
	return s.VehicleBookings(ctx)
}

func (s *DefaultService) CreateVehicle(ctx context.Context, v models.VehicleInput) (*models.Vehicle, error) {
	return s.Vehicles.Create(ctx, v)
}

func (s *DefaultService) PendingVendors(ctx context.Context, status string) ([]models.VendorRegistrationRequest, error) {
	if status == "" {
		status = "PENDING"
	}
	reqs, err := s.Admin.ListVendorRequests(ctx, status)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []models.VendorRegistrationRequest{}
	}
	return reqs, nil
}

// ApproveVendor approves the request and returns the refreshed pending list,
// from which the approved row is gone.
func (s *DefaultService) ApproveVendor(ctx context.Context, id int64) ([]models.VendorRegistrationRequest, error) {
	if err := s.Admin.ApproveVendor(ctx, id); err != nil {
		return nil, err
	}
	return s.PendingVendors(ctx, "PENDING")
}

func (s *DefaultService) RejectVendor(ctx context.Context, id int64, reason string) ([]models.VendorRegistrationRequest, error) {
	if err := s.Admin.RejectVendor(ctx, id, reason); err != nil {
		return nil, err
	}
	return s.PendingVendors(ctx, "PENDING")
}
