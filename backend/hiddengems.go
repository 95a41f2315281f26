package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"roamify/models"
)

type hiddenGemAPI struct {
	c *Client
}

// Values encodes the query, leaving out unset filters so the request matches
// what the backend expects for "no filter".
func (q HiddenGemQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.StateID > 0 {
		v.Set("stateId", strconv.FormatInt(q.StateID, 10))
	}
	if q.AdventureTypeID > 0 {
		v.Set("adventureTypeId", strconv.FormatInt(q.AdventureTypeID, 10))
	}
	if q.Difficulty != "" {
		v.Set("difficulty", q.Difficulty)
	}
	return v
}

func (a *hiddenGemAPI) List(ctx context.Context, q HiddenGemQuery) (*models.HiddenGemPage, error) {
	var out models.HiddenGemPage
	if err := a.c.get(ctx, "/hidden-gems", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *hiddenGemAPI) Get(ctx context.Context, id int64) (*models.HiddenGem, error) {
	var out models.HiddenGem
	if err := a.c.get(ctx, fmt.Sprintf("/hidden-gems/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *hiddenGemAPI) States(ctx context.Context) ([]models.State, error) {
	var out []models.State
	if err := a.c.get(ctx, "/states", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *hiddenGemAPI) AdventureTypes(ctx context.Context) ([]models.AdventureType, error) {
	var out []models.AdventureType
	if err := a.c.get(ctx, "/adventure-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *hiddenGemAPI) Bookmark(ctx context.Context, id int64) error {
	return a.c.post(ctx, fmt.Sprintf("/hidden-gems/%d/bookmark", id), nil, nil, nil)
}

func (a *hiddenGemAPI) Unbookmark(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/hidden-gems/%d/bookmark", id))
}
