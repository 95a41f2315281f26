package backend

import (
	"context"
	"fmt"

	"roamify/models"
)

type vendorAPI struct {
	c *Client
}

func (a *vendorAPI) DashboardSummary(ctx context.Context) (*models.VendorDashboardSummary, error) {
	var out models.VendorDashboardSummary
	if err := a.c.get(ctx, "/vendor/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vendorAPI) DashboardBookings(ctx context.Context) ([]models.TourBooking, error) {
	var out []models.TourBooking
	if err := a.c.get(ctx, "/vendor/dashboard/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vendorAPI) ListTours(ctx context.Context) ([]models.TourPackage, error) {
	var out []models.TourPackage
	if err := a.c.get(ctx, "/vendor/tours", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vendorAPI) CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	if err := a.c.post(ctx, "/vendor/tours", nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vendorAPI) UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	if err := a.c.put(ctx, fmt.Sprintf("/vendor/tours/%d", id), t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vendorAPI) DeleteTour(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/vendor/tours/%d", id))
}

func (a *vendorAPI) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := a.c.get(ctx, "/vendor/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vendorAPI) CreateVehicle(ctx context.Context, v models.VehicleInput) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := a.c.post(ctx, "/vendor/vehicles", nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vendorAPI) UpdateVehicle(ctx context.Context, id int64, v models.VehicleInput) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := a.c.put(ctx, fmt.Sprintf("/vendor/vehicles/%d", id), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vendorAPI) DeleteVehicle(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/vendor/vehicles/%d", id))
}
