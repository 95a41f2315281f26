package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamify/backend/mocks"
	"roamify/models"
)

func pendingVendors(ids ...int64) []models.VendorRegistrationRequest {
	out := make([]models.VendorRegistrationRequest, len(ids))
	for i, id := range ids {
		out[i] = models.VendorRegistrationRequest{ID: id, Status: "PENDING"}
	}
	return out
}

func TestApproveVendorRefreshesPendingList(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	api.On("ApproveVendor", context.Background(), int64(7)).Return(nil)
	api.On("ListVendorRequests", context.Background(), "PENDING").Return(pendingVendors(3, 12), nil)

	list, err := svc.ApproveVendor(context.Background(), 7)
	require.NoError(t, err)

	for _, req := range list {
		assert.NotEqual(t, int64(7), req.ID, "approved request must leave the pending list")
	}
	assert.Len(t, list, 2)
	api.AssertExpectations(t)
}

func TestApproveVendorFailureSkipsRefresh(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	api.On("ApproveVendor", context.Background(), int64(7)).Return(errors.New("conflict"))

	_, err := svc.ApproveVendor(context.Background(), 7)
	assert.Error(t, err)
	api.AssertNotCalled(t, "ListVendorRequests")
}

func TestRejectVendorRefreshesPendingList(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	api.On("RejectVendor", context.Background(), int64(5), "incomplete documents").Return(nil)
	api.On("ListVendorRequests", context.Background(), "PENDING").Return(pendingVendors(8), nil)

	list, err := svc.RejectVendor(context.Background(), 5, "incomplete documents")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	api.AssertExpectations(t)
}

func TestPendingVendorsDefaultsStatus(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	api.On("ListVendorRequests", context.Background(), "PENDING").Return(nil, nil)

	list, err := svc.PendingVendors(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	api.AssertExpectations(t)
}

func TestCreateTourReturnsRefreshedList(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	input := models.TourPackage{Name: "Western Ghats Trek", DurationDays: 3}
	created := input
	created.ID = 21

	api.On("CreateTour", context.Background(), input).Return(&created, nil)
	api.On("ListTours", context.Background()).Return([]models.TourPackage{created}, nil)

	list, err := svc.CreateTour(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(21), list[0].ID)
	api.AssertExpectations(t)
}

func TestDeleteTourReturnsRefreshedList(t *testing.T) {
	api := new(mocks.MockAdminAPI)
	svc := &DefaultService{Admin: api}

	api.On("DeleteTour", context.Background(), int64(21)).Return(nil)
	api.On("ListTours", context.Background()).Return([]models.TourPackage{}, nil)

	list, err := svc.DeleteTour(context.Background(), 21)
	require.NoError(t, err)
	assert.Empty(t, list)
	api.AssertExpectations(t)
}

func TestCancelVehicleBookingRefreshesList(t *testing.T) {
	adminAPI := new(mocks.MockAdminAPI)
	bookings := new(mocks.MockBookingAPI)
	svc := &DefaultService{Admin: adminAPI, Bookings: bookings}

	bookings.On("Cancel", context.Background(), int64(42)).Return(nil)
	bookings.On("List", context.Background()).Return([]models.VehicleBooking{
		{ID: 42, Status: models.BookingCancelled},
	}, nil)

	list, err := svc.CancelVehicleBooking(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.BookingCancelled, list[0].Status)
	bookings.AssertExpectations(t)
}
