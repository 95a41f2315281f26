// Package gems holds the hidden-gems page logic: the paginated, filtered
// list, the detail view and the filter reference data.
package gems

import (
	"context"

	"roamify/backend"
	"roamify/models"
)

// DefaultPageSize matches the list page's fixed card grid.
const DefaultPageSize = 12

// EmptyMessage is shown when a query matches nothing.
const EmptyMessage = "No hidden gems found"

const defaultSort = "createdAt,desc"

// ListView is what the list page renders: the current page plus the
// navigation flags the pager needs to keep Next/Previous disabled at the
// edges.
type ListView struct {
	Gems          []models.HiddenGem `json:"gems"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
	HasPrevious   bool               `json:"hasPrevious"`
	HasNext       bool               `json:"hasNext"`
	Message       string             `json:"message,omitempty"`
}

// ReferenceData backs the filter dropdowns.
type ReferenceData struct {
	States         []models.State         `json:"states"`
	AdventureTypes []models.AdventureType `json:"adventureTypes"`
}

type Service interface {
	Browse(ctx context.Context, q backend.HiddenGemQuery) (*ListView, error)
	Get(ctx context.Context, id int64) (*models.HiddenGem, error)
	References(ctx context.Context) (*ReferenceData, error)
}

type DefaultService struct {
	Gems backend.HiddenGemAPI
}

// Browse fetches one page of gems. The requested page is clamped into
// [0, totalPages-1]: a page beyond the end triggers one refetch of the last
// page rather than returning an empty tail.
func (s *DefaultService) Browse(ctx context.Context, q backend.HiddenGemQuery) (*ListView, error) {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Sort == "" {
		q.Sort = defaultSort
	}

	page, err := s.Gems.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if page.TotalPages > 0 && q.Page > page.TotalPages-1 {
		q.Page = page.TotalPages - 1
		if page, err = s.Gems.List(ctx, q); err != nil {
			return nil, err
		}
	}
	return BuildView(page), nil
}

// BuildView maps the backend page envelope onto the list view model.
func BuildView(page *models.HiddenGemPage) *ListView {
	view := &ListView{
		Gems:          page.Content,
		Page:          page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		HasPrevious:   page.Number > 0,
		HasNext:       page.Number < page.TotalPages-1,
	}
	if view.Gems == nil {
		view.Gems = []models.HiddenGem{}
	}
	if view.TotalElements == 0 {
		view.Message = EmptyMessage
	}
	return view
}

func (s *DefaultService) Get(ctx context.Context, id int64) (*models.HiddenGem, error) {
	return s.Gems.Get(ctx, id)
}

// References fetches states and adventure types in parallel; the two lists
// are independent and unordered relative to each other.
func (s *DefaultService) References(ctx context.Context) (*ReferenceData, error) {
	ref := &ReferenceData{}
	errs := make(chan error, 2)

	go func() {
		states, err := s.Gems.States(ctx)
		ref.States = states
		errs <- err
	}()
	go func() {
		types, err := s.Gems.AdventureTypes(ctx)
		ref.AdventureTypes = types
		errs <- err
	}()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	if ref.States == nil {
		ref.States = []models.State{}
	}
	if ref.AdventureTypes == nil {
		ref.AdventureTypes = []models.AdventureType{}
	}
	return ref, nil
}
