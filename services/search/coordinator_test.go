package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamify/backend"
	"roamify/models"
	"roamify/services/gems"
)

// stubGems records Browse calls and serves a canned page per query.
type stubGems struct {
	mu      sync.Mutex
	queries []string
	err     error
}

func (s *stubGems) Browse(_ context.Context, q backend.HiddenGemQuery) (*gems.ListView, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q.Search)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return gems.BuildView(&models.HiddenGemPage{
		Content:       []models.HiddenGem{{ID: 1, Name: "Match for " + q.Search}},
		Size:          gems.DefaultPageSize,
		TotalElements: 1,
		TotalPages:    1,
	}), nil
}

func (s *stubGems) Get(context.Context, int64) (*models.HiddenGem, error) {
	return nil, errors.New("not implemented")
}

func (s *stubGems) References(context.Context) (*gems.ReferenceData, error) {
	return nil, errors.New("not implemented")
}

func (s *stubGems) browsed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// collectingSink gathers results behind a mutex, like the websocket writer.
type collectingSink struct {
	mu      sync.Mutex
	results []Result
}

func (c *collectingSink) sink(r Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
}

func (c *collectingSink) collected() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result(nil), c.results...)
}

func TestKeystrokeBurstFiresOneQuery(t *testing.T) {
	svc := &stubGems{}
	out := &collectingSink{}
	coord := NewCoordinator(svc, 50*time.Millisecond, nil, "", out.sink, zap.NewNop())
	defer coord.Close()

	ctx := context.Background()
	coord.Input(ctx, "w")
	coord.Input(ctx, "wa")
	coord.Input(ctx, "wat")
	coord.Input(ctx, "waterfall")

	time.Sleep(300 * time.Millisecond)

	require.Equal(t, []string{"waterfall"}, svc.browsed(), "only the last keystroke's value should be fetched")

	results := out.collected()
	require.Len(t, results, 1)
	assert.Equal(t, "waterfall", results[0].Query)
	require.NotNil(t, results[0].View)
	assert.Len(t, results[0].View.Gems, 1)
	assert.Empty(t, results[0].Error)
}

func TestSeparatedInputsEachFire(t *testing.T) {
	svc := &stubGems{}
	out := &collectingSink{}
	coord := NewCoordinator(svc, 30*time.Millisecond, nil, "", out.sink, zap.NewNop())
	defer coord.Close()

	ctx := context.Background()
	coord.Input(ctx, "goa")
	time.Sleep(200 * time.Millisecond)
	coord.Input(ctx, "caves")
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, []string{"goa", "caves"}, svc.browsed())
	assert.Len(t, out.collected(), 2)
}

func TestFailedQueryReportsError(t *testing.T) {
	svc := &stubGems{err: errors.New("backend down")}
	out := &collectingSink{}
	coord := NewCoordinator(svc, 20*time.Millisecond, nil, "", out.sink, zap.NewNop())
	defer coord.Close()

	coord.Input(context.Background(), "falls")
	time.Sleep(200 * time.Millisecond)

	results := out.collected()
	require.Len(t, results, 1)
	assert.Equal(t, "falls", results[0].Query)
	assert.Nil(t, results[0].View)
	assert.NotEmpty(t, results[0].Error)
}

func TestCloseCancelsPendingFetch(t *testing.T) {
	svc := &stubGems{}
	out := &collectingSink{}
	coord := NewCoordinator(svc, 50*time.Millisecond, nil, "", out.sink, zap.NewNop())

	coord.Input(context.Background(), "dropped")
	coord.Close()

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, svc.browsed())
	assert.Empty(t, out.collected())
}
