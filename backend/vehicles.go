package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"roamify/models"
)

type vehicleAPI struct {
	c *Client
}

func (a *vehicleAPI) List(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := a.c.get(ctx, "/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vehicleAPI) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := a.c.get(ctx, fmt.Sprintf("/vehicles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vehicleAPI) Available(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := a.c.get(ctx, "/vehicles/available", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vehicleAPI) Nearby(ctx context.Context, latitude, longitude, radius float64) ([]models.Vehicle, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	var out []models.Vehicle
	if err := a.c.get(ctx, "/vehicles/nearby", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *vehicleAPI) Create(ctx context.Context, in models.VehicleInput) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := a.c.post(ctx, "/vehicles", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *vehicleAPI) Favorite(ctx context.Context, id int64) error {
	return a.c.post(ctx, fmt.Sprintf("/vehicles/%d/favorite", id), nil, nil, nil)
}

func (a *vehicleAPI) Unfavorite(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/vehicles/%d/favorite", id))
}
