package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"roamify/models"
)

type bookingAPI struct {
	c *Client
}

func (a *bookingAPI) CheckAvailability(ctx context.Context, vehicleID int64, startTime, endTime string) (*models.AvailabilityResult, error) {
	q := url.Values{}
	q.Set("vehicleId", strconv.FormatInt(vehicleID, 10))
	q.Set("startTime", startTime)
	q.Set("endTime", endTime)
	var out models.AvailabilityResult
	if err := a.c.get(ctx, "/bookings/check-availability", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *bookingAPI) Create(ctx context.Context, req models.VehicleBookingRequest) (*models.VehicleBooking, error) {
	var out models.VehicleBooking
	if err := a.c.post(ctx, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *bookingAPI) List(ctx context.Context) ([]models.VehicleBooking, error) {
	var out []models.VehicleBooking
	if err := a.c.get(ctx, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *bookingAPI) ListForUser(ctx context.Context) ([]models.VehicleBooking, error) {
	var out []models.VehicleBooking
	if err := a.c.get(ctx, "/bookings/user", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *bookingAPI) Cancel(ctx context.Context, id int64) error {
	return a.c.post(ctx, fmt.Sprintf("/bookings/%d/cancel", id), nil, nil, nil)
}

func (a *bookingAPI) UpdateStatus(ctx context.Context, id int64, status string) (*models.VehicleBooking, error) {
	q := url.Values{}
	q.Set("status", status)
	var out models.VehicleBooking
	if err := a.c.patch(ctx, fmt.Sprintf("/bookings/%d/status", id), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
