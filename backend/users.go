package backend

import (
	"context"

	"roamify/models"
)

type userAPI struct {
	c *Client
}

func (a *userAPI) Profile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := a.c.get(ctx, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *userAPI) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := a.c.put(ctx, "/users/profile", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *userAPI) BookmarkedGems(ctx context.Context) ([]models.HiddenGem, error) {
	var out []models.HiddenGem
	if err := a.c.get(ctx, "/users/bookmarks/hidden-gems", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *userAPI) FavoriteVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := a.c.get(ctx, "/users/favorites/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
