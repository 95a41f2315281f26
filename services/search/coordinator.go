// Package search drives the live hidden-gem search channel. Keystrokes
// stream in, get debounced into one backend query per quiet period, and
// completions that lost the race against a newer query are dropped instead
// of overwriting fresher results.
package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"roamify/backend"
	"roamify/services/gems"
	"roamify/utils"
)

const (
	lastResultPrefix = "search:last:"
	lastResultTTL    = 10 * time.Minute
)

// Result is pushed to the subscriber for every applied query.
type Result struct {
	Query string         `json:"query"`
	View  *gems.ListView `json:"view,omitempty"`
	Error string         `json:"error,omitempty"`
}

// Sink receives applied results, typically a websocket write.
type Sink func(Result)

// Coordinator owns one subscriber's search state.
type Coordinator struct {
	svc       gems.Service
	cache     *redis.Client
	logger    *zap.Logger
	sessionID string
	sink      Sink

	debounce *utils.Debouncer
	seq      utils.Sequence
}

// NewCoordinator builds a coordinator with the given quiet period. cache may
// be nil; then the last result is simply not persisted. sessionID may be
// empty for anonymous subscribers.
func NewCoordinator(svc gems.Service, quiet time.Duration, cache *redis.Client, sessionID string, sink Sink, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		svc:       svc,
		cache:     cache,
		logger:    logger,
		sessionID: sessionID,
		sink:      sink,
		debounce:  utils.NewDebouncer(quiet),
	}
}

// Input registers a keystroke. The fetch fires only after the quiet period
// with the value of the last keystroke; earlier pending fetches for this
// subscriber are cancelled before they start.
func (c *Coordinator) Input(ctx context.Context, query string) {
	c.debounce.Trigger(func() {
		c.fetch(ctx, query)
	})
}

// Close cancels any pending fetch.
func (c *Coordinator) Close() {
	c.debounce.Stop()
}

func (c *Coordinator) fetch(ctx context.Context, query string) {
	gen := c.seq.Next()
	view, err := c.svc.Browse(ctx, backend.HiddenGemQuery{Search: query, Size: gems.DefaultPageSize})
	if !c.seq.Apply(gen) {
		// Superseded while in flight; a newer query owns the state now.
		return
	}
	if err != nil {
		c.logger.Warn("Live search query failed", zap.String("query", query), zap.Error(err))
		c.sink(Result{Query: query, Error: "Search failed. Please try again."})
		return
	}
	res := Result{Query: query, View: view}
	c.sink(res)
	c.remember(ctx, res)
}

func (c *Coordinator) remember(ctx context.Context, res Result) {
	if c.cache == nil || c.sessionID == "" {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, lastResultPrefix+c.sessionID, data, lastResultTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache search result", zap.Error(err))
	}
}

// LastResult restores the subscriber's most recent applied result, so a
// reconnecting client starts from where it left off.
func (c *Coordinator) LastResult(ctx context.Context) (*Result, bool) {
	if c.cache == nil || c.sessionID == "" {
		return nil, false
	}
	data, err := c.cache.Get(ctx, lastResultPrefix+c.sessionID).Result()
	if err != nil {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, false
	}
	return &res, true
}
