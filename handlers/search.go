package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"roamify/middleware"
	"roamify/services/gems"
	"roamify/services/search"
)

// SearchHandler upgrades /ws/search connections and streams debounced
// hidden-gem results back as the user types.
type SearchHandler struct {
	Gems  gems.Service
	Cache *redis.Client
	Quiet time.Duration
}

func NewSearchHandler(svc gems.Service, cache *redis.Client, quiet time.Duration) *SearchHandler {
	return &SearchHandler{Gems: svc, Cache: cache, Quiet: quiet}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin policy is enforced by the CORS layer; the socket accepts
	// whatever origin reached it.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type searchInput struct {
	Query string `json:"query"`
}

func (h *SearchHandler) Serve(c *gin.Context) {
	logger := getLogger(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Search socket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var sessionID string
	if sess := middleware.CurrentSession(c); sess != nil {
		sessionID = sess.ID
	}

	// Writes come off debounce timers, reads off this loop; one writer at a
	// time on the socket.
	var writeMu sync.Mutex
	sink := func(res search.Result) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(res); err != nil {
			logger.Debug("Search socket write failed", zap.Error(err))
		}
	}

	coord := search.NewCoordinator(h.Gems, h.Quiet, h.Cache, sessionID, sink, logger)
	defer coord.Close()

	// Let a reconnecting subscriber pick up where they left off.
	if last, ok := coord.LastResult(c.Request.Context()); ok {
		sink(*last)
	}

	ctx := apiCtx(c)
	for {
		var in searchInput
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		coord.Input(ctx, in.Query)
	}
}
