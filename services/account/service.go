// Package account holds the signed-in user's pages: profile, bookmarks,
// favorites and booking history.
package account

import (
	"context"

	"roamify/backend"
	"roamify/models"
)

type Service interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error)

	Bookmarks(ctx context.Context) ([]models.HiddenGem, error)
	AddBookmark(ctx context.Context, gemID int64) error
	RemoveBookmark(ctx context.Context, gemID int64) error

	Favorites(ctx context.Context) ([]models.Vehicle, error)
	AddFavorite(ctx context.Context, vehicleID int64) error
	RemoveFavorite(ctx context.Context, vehicleID int64) error

	VehicleBookings(ctx context.Context) ([]models.VehicleBooking, error)
	TourBookings(ctx context.Context) ([]models.TourBooking, error)
	CancelVehicleBooking(ctx context.Context, id int64) error
}

type DefaultService struct {
	Users    backend.UserAPI
	Gems     backend.HiddenGemAPI
	Vehicles backend.VehicleAPI
	Bookings backend.BookingAPI
	Tours    backend.TourAPI
}

func (s *DefaultService) Profile(ctx context.Context) (*models.UserProfile, error) {
	return s.Users.Profile(ctx)
}

func (s *DefaultService) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	return s.Users.UpdateProfile(ctx, p)
}

func (s *DefaultService) Bookmarks(ctx context.Context) ([]models.HiddenGem, error) {
	gems, err := s.Users.BookmarkedGems(ctx)
	if err != nil {
		return nil, err
	}
	if gems == nil {
		gems = []models.HiddenGem{}
	}
	return gems, nil
}

func (s *DefaultService) AddBookmark(ctx context.Context, gemID int64) error {
	return s.Gems.Bookmark(ctx, gemID)
}

func (s *DefaultService) RemoveBookmark(ctx context.Context, gemID int64) error {
	return s.Gems.Unbookmark(ctx, gemID)
}

func (s *DefaultService) Favorites(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.Users.FavoriteVehicles(ctx)
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

func (s *DefaultService) AddFavorite(ctx context.Context, vehicleID int64) error {
	return s.Vehicles.Favorite(ctx, vehicleID)
}

func (s *DefaultService) RemoveFavorite(ctx context.Context, vehicleID int64) error {
	return s.Vehicles.Unfavorite(ctx, vehicleID)
}

func (s *DefaultService) VehicleBookings(ctx context.Context) ([]models.VehicleBooking, error) {
	bookings, err := s.Bookings.ListForUser(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.VehicleBooking{}
	}
	return bookings, nil
}

func (s *DefaultService) TourBookings(ctx context.Context) ([]models.TourBooking, error) {
	bookings, err := s.Tours.MyBookings(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.TourBooking{}
	}
	return bookings, nil
}

func (s *DefaultService) CancelVehicleBooking(ctx context.Context, id int64) error {
	return s.Bookings.Cancel(ctx, id)
}
