// Package vehicles holds the page logic for vehicle browsing: list with the
// client-side hourly-price filter, detail, availability and nearby search.
package vehicles

import (
	"context"

	"roamify/backend"
	"roamify/models"
)

// Filter narrows the vehicle list. Price bounds are applied client-side
// against hourlyPrice; the backend has no price filter.
type Filter struct {
	Type          string
	OnlyAvailable bool
	MinPrice      *float64
	MaxPrice      *float64
}

type Service interface {
	Browse(ctx context.Context, f Filter) ([]models.Vehicle, error)
	Get(ctx context.Context, id int64) (*models.Vehicle, error)
	Nearby(ctx context.Context, latitude, longitude, radius float64) ([]models.Vehicle, error)
	CheckAvailability(ctx context.Context, vehicleID int64, startTime, endTime string) (*models.AvailabilityResult, error)
	Book(ctx context.Context, req models.VehicleBookingRequest) (*models.VehicleBooking, error)
}

type DefaultService struct {
	Vehicles backend.VehicleAPI
	Bookings backend.BookingAPI
}

func (s *DefaultService) Browse(ctx context.Context, f Filter) ([]models.Vehicle, error) {
	var (
		list []models.Vehicle
		err  error
	)
	if f.OnlyAvailable {
		list, err = s.Vehicles.Available(ctx)
	} else {
		list, err = s.Vehicles.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return Apply(f, list), nil
}

// Apply filters a fetched list. Kept separate so the list page can re-filter
// without refetching when only the price bounds change.
func Apply(f Filter, list []models.Vehicle) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(list))
	for _, v := range list {
		if f.Type != "" && v.Type != f.Type {
			continue
		}
		if f.MinPrice != nil && v.HourlyPrice < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && v.HourlyPrice > *f.MaxPrice {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *DefaultService) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	return s.Vehicles.Get(ctx, id)
}

func (s *DefaultService) Nearby(ctx context.Context, latitude, longitude, radius float64) ([]models.Vehicle, error) {
	if radius <= 0 {
		radius = 5.0
	}
	list, err := s.Vehicles.Nearby(ctx, latitude, longitude, radius)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Vehicle{}
	}
	return list, nil
}

func (s *DefaultService) CheckAvailability(ctx context.Context, vehicleID int64, startTime, endTime string) (*models.AvailabilityResult, error) {
	return s.Bookings.CheckAvailability(ctx, vehicleID, startTime, endTime)
}

func (s *DefaultService) Book(ctx context.Context, req models.VehicleBookingRequest) (*models.VehicleBooking, error) {
	return s.Bookings.Create(ctx, req)
}
