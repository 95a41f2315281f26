package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"roamify/models"
)

type tourAPI struct {
	c *Client
}

func (a *tourAPI) List(ctx context.Context) ([]models.TourPackage, error) {
	var out []models.TourPackage
	if err := a.c.get(ctx, "/tours", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *tourAPI) Get(ctx context.Context, id int64) (*models.TourPackage, error) {
	var out models.TourPackage
	if err := a.c.get(ctx, fmt.Sprintf("/tours/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *tourAPI) Availability(ctx context.Context, id int64, date string, guests int) (*models.TourAvailability, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("guests", strconv.Itoa(guests))
	var out models.TourAvailability
	if err := a.c.get(ctx, fmt.Sprintf("/tours/%d/availability", id), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Book submits a tour booking. The backend takes the whole request as query
// parameters with an empty body.
func (a *tourAPI) Book(ctx context.Context, id int64, req models.TourBookingRequest) (*models.TourBookingConfirmation, error) {
	q := url.Values{}
	q.Set("date", req.Date)
	q.Set("adults", strconv.Itoa(req.Adults))
	q.Set("children", strconv.Itoa(req.Children))
	q.Set("contactName", req.ContactName)
	q.Set("contactEmail", req.ContactEmail)
	q.Set("contactPhone", req.ContactPhone)
	var out models.TourBookingConfirmation
	if err := a.c.post(ctx, fmt.Sprintf("/tours/%d/book", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *tourAPI) MyBookings(ctx context.Context) ([]models.TourBooking, error) {
	var out []models.TourBooking
	if err := a.c.get(ctx, "/tours/my-bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
