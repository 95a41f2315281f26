package tours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamify/backend/mocks"
	"roamify/models"
)

func validForm() BookingForm {
	return BookingForm{
		Date:         "2026-09-15",
		Adults:       "2",
		Children:     "1",
		ContactName:  "Bob Lee",
		ContactEmail: "bob@example.com",
		ContactPhone: "555-0101",
	}
}

func TestBookCoercesFormAndReturnsConfirmation(t *testing.T) {
	api := new(mocks.MockTourAPI)
	svc := &DefaultService{Tours: api}

	want := models.TourBookingRequest{
		Date:         "2026-09-15",
		Adults:       2,
		Children:     1,
		ContactName:  "Bob Lee",
		ContactEmail: "bob@example.com",
		ContactPhone: "555-0101",
	}
	api.On("Book", context.Background(), int64(9), want).
		Return(&models.TourBookingConfirmation{BookingID: "BK123", TotalPrice: 4500}, nil)

	conf, err := svc.Book(context.Background(), 9, validForm())
	require.NoError(t, err)
	assert.Equal(t, "BK123", conf.BookingID)
	assert.Equal(t, 4500.0, conf.TotalPrice)
	api.AssertExpectations(t)
}

func TestBookBlankChildrenDefaultsToZero(t *testing.T) {
	api := new(mocks.MockTourAPI)
	svc := &DefaultService{Tours: api}

	form := validForm()
	form.Children = ""

	api.On("Book", context.Background(), int64(9), models.TourBookingRequest{
		Date:         form.Date,
		Adults:       2,
		Children:     0,
		ContactName:  form.ContactName,
		ContactEmail: form.ContactEmail,
		ContactPhone: form.ContactPhone,
	}).Return(&models.TourBookingConfirmation{BookingID: "BK124", TotalPrice: 3000}, nil)

	_, err := svc.Book(context.Background(), 9, form)
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBookRejectsInvalidForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingForm)
	}{
		{"non-numeric adults", func(f *BookingForm) { f.Adults = "two" }},
		{"zero adults", func(f *BookingForm) { f.Adults = "0" }},
		{"blank adults", func(f *BookingForm) { f.Adults = "" }},
		{"negative children", func(f *BookingForm) { f.Children = "-1" }},
		{"non-numeric children", func(f *BookingForm) { f.Children = "one" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.MockTourAPI)
			svc := &DefaultService{Tours: api}

			form := validForm()
			tt.mutate(&form)

			_, err := svc.Book(context.Background(), 9, form)
			assert.ErrorIs(t, err, ErrInvalidForm)
			api.AssertNotCalled(t, "Book")
		})
	}
}

func TestBookTrimsWhitespaceInCounts(t *testing.T) {
	api := new(mocks.MockTourAPI)
	svc := &DefaultService{Tours: api}

	form := validForm()
	form.Adults = " 3 "
	form.Children = " 2 "

	api.On("Book", context.Background(), int64(1), models.TourBookingRequest{
		Date:         form.Date,
		Adults:       3,
		Children:     2,
		ContactName:  form.ContactName,
		ContactEmail: form.ContactEmail,
		ContactPhone: form.ContactPhone,
	}).Return(&models.TourBookingConfirmation{BookingID: "BK125"}, nil)

	_, err := svc.Book(context.Background(), 1, form)
	require.NoError(t, err)
}

func TestCheckAvailabilityClampsGuests(t *testing.T) {
	api := new(mocks.MockTourAPI)
	svc := &DefaultService{Tours: api}

	api.On("Availability", context.Background(), int64(4), "2026-09-15", 1).
		Return(&models.TourAvailability{Available: true, SpotsLeft: 6}, nil)

	res, err := svc.CheckAvailability(context.Background(), 4, "2026-09-15", 0)
	require.NoError(t, err)
	assert.True(t, res.Available)
	api.AssertExpectations(t)
}

func TestListDefaultsNilToEmpty(t *testing.T) {
	api := new(mocks.MockTourAPI)
	svc := &DefaultService{Tours: api}

	api.On("List", context.Background()).Return(nil, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
