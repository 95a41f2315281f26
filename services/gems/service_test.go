package gems

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamify/backend"
	"roamify/backend/mocks"
	"roamify/models"
)

func gemsPage(number, size, totalPages int, total int64, names ...string) *models.HiddenGemPage {
	content := make([]models.HiddenGem, len(names))
	for i, n := range names {
		content[i] = models.HiddenGem{ID: int64(i + 1), Name: n}
	}
	return &models.HiddenGemPage{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func TestBrowseAppliesDefaults(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	want := backend.HiddenGemQuery{Page: 0, Size: DefaultPageSize, Sort: "createdAt,desc"}
	api.On("List", context.Background(), want).Return(gemsPage(0, 12, 1, 2, "Falls", "Caves"), nil)

	view, err := svc.Browse(context.Background(), backend.HiddenGemQuery{})
	require.NoError(t, err)
	assert.Len(t, view.Gems, 2)
	api.AssertExpectations(t)
}

func TestBrowseClampsNegativePage(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	want := backend.HiddenGemQuery{Page: 0, Size: DefaultPageSize, Sort: "createdAt,desc"}
	api.On("List", context.Background(), want).Return(gemsPage(0, 12, 1, 1, "Falls"), nil)

	_, err := svc.Browse(context.Background(), backend.HiddenGemQuery{Page: -3})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBrowseRefetchesLastPageWhenBeyondEnd(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	beyond := backend.HiddenGemQuery{Page: 9, Size: DefaultPageSize, Sort: "createdAt,desc"}
	last := backend.HiddenGemQuery{Page: 2, Size: DefaultPageSize, Sort: "createdAt,desc"}
	api.On("List", context.Background(), beyond).Return(gemsPage(9, 12, 3, 30), nil).Once()
	api.On("List", context.Background(), last).Return(gemsPage(2, 12, 3, 30, "Tail"), nil).Once()

	view, err := svc.Browse(context.Background(), backend.HiddenGemQuery{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Gems, 1)
	api.AssertExpectations(t)
}

func TestBrowsePropagatesError(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	boom := errors.New("backend down")
	api.On("List", context.Background(), backend.HiddenGemQuery{Size: DefaultPageSize, Sort: "createdAt,desc"}).Return(nil, boom)

	_, err := svc.Browse(context.Background(), backend.HiddenGemQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestBuildViewNavigationFlags(t *testing.T) {
	tests := []struct {
		name        string
		page        *models.HiddenGemPage
		hasPrevious bool
		hasNext     bool
	}{
		{"first of many", gemsPage(0, 12, 3, 30, "A"), false, true},
		{"middle", gemsPage(1, 12, 3, 30, "A"), true, true},
		{"last", gemsPage(2, 12, 3, 30, "A"), true, false},
		{"single page", gemsPage(0, 12, 1, 5, "A"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildView(tt.page)
			assert.Equal(t, tt.hasPrevious, view.HasPrevious)
			assert.Equal(t, tt.hasNext, view.HasNext)
			assert.Empty(t, view.Message)
		})
	}
}

func TestBuildViewEmptyResult(t *testing.T) {
	view := BuildView(&models.HiddenGemPage{Number: 0, Size: 12})

	assert.NotNil(t, view.Gems)
	assert.Empty(t, view.Gems)
	assert.Equal(t, EmptyMessage, view.Message)
}

func TestReferencesFetchesBothLists(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	api.On("States", context.Background()).Return([]models.State{{ID: 1, Name: "Goa"}}, nil)
	api.On("AdventureTypes", context.Background()).Return([]models.AdventureType{{ID: 2, Name: "Trekking"}}, nil)

	ref, err := svc.References(context.Background())
	require.NoError(t, err)
	assert.Len(t, ref.States, 1)
	assert.Len(t, ref.AdventureTypes, 1)
	api.AssertExpectations(t)
}

func TestReferencesSurfacesFirstError(t *testing.T) {
	api := new(mocks.MockHiddenGemAPI)
	svc := &DefaultService{Gems: api}

	api.On("States", context.Background()).Return(nil, errors.New("states down"))
	api.On("AdventureTypes", context.Background()).Return([]models.AdventureType{}, nil)

	_, err := svc.References(context.Background())
	assert.Error(t, err)
}
