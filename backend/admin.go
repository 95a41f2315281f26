package backend

import (
	"context"
	"fmt"
	"net/url"

	"roamify/models"
)

type adminAPI struct {
	c *Client
}

func (a *adminAPI) ListTours(ctx context.Context) ([]models.TourPackage, error) {
	var out []models.TourPackage
	if err := a.c.get(ctx, "/admin/tours", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *adminAPI) CreateTour(ctx context.Context, t models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	if err := a.c.post(ctx, "/admin/tours", nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) UpdateTour(ctx context.Context, id int64, t models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	if err := a.c.put(ctx, fmt.Sprintf("/admin/tours/%d", id), t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) DeleteTour(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/admin/tours/%d", id))
}

func (a *adminAPI) ListHiddenGems(ctx context.Context, q HiddenGemQuery) (*models.HiddenGemPage, error) {
	var out models.HiddenGemPage
	if err := a.c.get(ctx, "/admin/hidden-gems", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) GetHiddenGem(ctx context.Context, id int64) (*models.HiddenGem, error) {
	var out models.HiddenGem
	if err := a.c.get(ctx, fmt.Sprintf("/admin/hidden-gems/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) CreateHiddenGem(ctx context.Context, g models.HiddenGemInput) (*models.HiddenGem, error) {
	var out models.HiddenGem
	if err := a.c.post(ctx, "/admin/hidden-gems", nil, g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) UpdateHiddenGem(ctx context.Context, id int64, g models.HiddenGemInput) (*models.HiddenGem, error) {
	var out models.HiddenGem
	if err := a.c.put(ctx, fmt.Sprintf("/admin/hidden-gems/%d", id), g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) DeleteHiddenGem(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/admin/hidden-gems/%d", id))
}

func (a *adminAPI) ListTourBookings(ctx context.Context) ([]models.TourBooking, error) {
	var out []models.TourBooking
	if err := a.c.get(ctx, "/admin/tour-bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *adminAPI) GetTourBooking(ctx context.Context, id string) (*models.TourBooking, error) {
	var out models.TourBooking
	if err := a.c.get(ctx, "/admin/tour-bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) UpdateTourBookingStatus(ctx context.Context, id, status string) (*models.TourBooking, error) {
	q := url.Values{}
	q.Set("status", status)
	var out models.TourBooking
	if err := a.c.patch(ctx, "/admin/tour-bookings/"+url.PathEscape(id)+"/status", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *adminAPI) CancelTourBooking(ctx context.Context, id string) error {
	return a.c.post(ctx, "/admin/tour-bookings/"+url.PathEscape(id)+"/cancel", nil, nil, nil)
}

func (a *adminAPI) ListVendorRequests(ctx context.Context, status string) ([]models.VendorRegistrationRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []models.VendorRegistrationRequest
	if err := a.c.get(ctx, "/admin/vendors/registration-requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *adminAPI) ApproveVendor(ctx context.Context, id int64) error {
	return a.c.post(ctx, fmt.Sprintf("/admin/vendors/%d/approve", id), nil, nil, nil)
}

func (a *adminAPI) RejectVendor(ctx context.Context, id int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return a.c.post(ctx, fmt.Sprintf("/admin/vendors/%d/reject", id), nil, body, nil)
}
