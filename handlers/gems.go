package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamify/backend"
	"roamify/services/gems"
	"roamify/session"
)

// GemHandler renders the hidden-gems discovery pages.
type GemHandler struct {
	Svc      gems.Service
	Sessions *session.Manager
}

func NewGemHandler(svc gems.Service, sessions *session.Manager) *GemHandler {
	return &GemHandler{Svc: svc, Sessions: sessions}
}

// gemQuery reads the list filters off the request.
func gemQuery(c *gin.Context) backend.HiddenGemQuery {
	q := backend.HiddenGemQuery{
		Search:     c.Query("search"),
		Difficulty: c.Query("difficulty"),
		Sort:       c.Query("sort"),
	}
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Size, _ = strconv.Atoi(c.Query("size"))
	q.StateID, _ = strconv.ParseInt(c.Query("stateId"), 10, 64)
	q.AdventureTypeID, _ = strconv.ParseInt(c.Query("adventureTypeId"), 10, 64)
	return q
}

// List renders one page of gems together with the filter reference data the
// page's dropdowns need.
func (h *GemHandler) List(c *gin.Context) {
	ctx := apiCtx(c)

	view, err := h.Svc.Browse(ctx, gemQuery(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}

	// Reference data is decoration for the filters; losing it does not take
	// the page down.
	out := gin.H{"page": view}
	if ref, err := h.Svc.References(ctx); err == nil {
		out["states"] = ref.States
		out["adventureTypes"] = ref.AdventureTypes
	} else {
		getLogger(c).Warn("Failed to load gem filter reference data")
	}
	c.JSON(http.StatusOK, out)
}

func (h *GemHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid hidden gem id"})
		return
	}
	gem, err := h.Svc.Get(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gem": gem})
}
