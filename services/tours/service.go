// Package tours holds the tour-package page logic: catalog, detail,
// availability and the booking form.
package tours

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"roamify/backend"
	"roamify/models"
)

// ErrInvalidForm marks booking-form values that cannot be coerced into a
// valid request.
var ErrInvalidForm = errors.New("invalid booking form")

// BookingForm is the raw booking form as submitted. Guest counts arrive as
// strings from form controls and are coerced before the request goes out.
type BookingForm struct {
	Date         string `json:"date"`
	Adults       string `json:"adults"`
	Children     string `json:"children"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type Service interface {
	List(ctx context.Context) ([]models.TourPackage, error)
	Get(ctx context.Context, id int64) (*models.TourPackage, error)
	CheckAvailability(ctx context.Context, id int64, date string, guests int) (*models.TourAvailability, error)
	Book(ctx context.Context, id int64, form BookingForm) (*models.TourBookingConfirmation, error)
}

type DefaultService struct {
	Tours backend.TourAPI
}

func (s *DefaultService) List(ctx context.Context) ([]models.TourPackage, error) {
	list, err := s.Tours.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.TourPackage{}
	}
	return list, nil
}

func (s *DefaultService) Get(ctx context.Context, id int64) (*models.TourPackage, error) {
	return s.Tours.Get(ctx, id)
}

func (s *DefaultService) CheckAvailability(ctx context.Context, id int64, date string, guests int) (*models.TourAvailability, error) {
	if guests < 1 {
		guests = 1
	}
	return s.Tours.Availability(ctx, id, date, guests)
}

// Book coerces the form into a booking request and submits it. Children
// defaults to 0 when the field is left blank.
func (s *DefaultService) Book(ctx context.Context, id int64, form BookingForm) (*models.TourBookingConfirmation, error) {
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.Tours.Book(ctx, id, req)
}

func (f BookingForm) request() (models.TourBookingRequest, error) {
	var req models.TourBookingRequest
	adults, err := strconv.Atoi(strings.TrimSpace(f.Adults))
	if err != nil || adults < 1 {
		return req, fmt.Errorf("%w: adults count %q", ErrInvalidForm, f.Adults)
	}
	children := 0
	if c := strings.TrimSpace(f.Children); c != "" {
		if children, err = strconv.Atoi(c); err != nil || children < 0 {
			return req, fmt.Errorf("%w: children count %q", ErrInvalidForm, f.Children)
		}
	}
	req = models.TourBookingRequest{
		Date:         f.Date,
		Adults:       adults,
		Children:     children,
		ContactName:  f.ContactName,
		ContactEmail: f.ContactEmail,
		ContactPhone: f.ContactPhone,
	}
	return req, nil
}
