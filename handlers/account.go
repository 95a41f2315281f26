package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamify/models"
	"roamify/services/account"
	"roamify/session"
)

// AccountHandler renders the signed-in user's pages: profile, bookmarks,
// favorites and booking history.
type AccountHandler struct {
	Svc      account.Service
	Sessions *session.Manager
}

func NewAccountHandler(svc account.Service, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{Svc: svc, Sessions: sessions}
}

func (h *AccountHandler) Profile(c *gin.Context) {
	profile, err := h.Svc.Profile(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var p models.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.Svc.UpdateProfile(apiCtx(c), p)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": updated})
}

func (h *AccountHandler) Bookmarks(c *gin.Context) {
	list, err := h.Svc.Bookmarks(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": list})
}

func (h *AccountHandler) AddBookmark(c *gin.Context) {
	h.toggle(c, h.Svc.AddBookmark, http.StatusCreated)
}

func (h *AccountHandler) RemoveBookmark(c *gin.Context) {
	h.toggle(c, h.Svc.RemoveBookmark, http.StatusOK)
}

func (h *AccountHandler) Favorites(c *gin.Context) {
	list, err := h.Svc.Favorites(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": list})
}

func (h *AccountHandler) AddFavorite(c *gin.Context) {
	h.toggle(c, h.Svc.AddFavorite, http.StatusCreated)
}

func (h *AccountHandler) RemoveFavorite(c *gin.Context) {
	h.toggle(c, h.Svc.RemoveFavorite, http.StatusOK)
}

// toggle is the shared shape of the bookmark/favorite flips: parse id, call
// the operation, acknowledge.
func (h *AccountHandler) toggle(c *gin.Context, op func(ctx context.Context, id int64) error, status int) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid id"})
		return
	}
	if err := op(apiCtx(c), id); err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(status, gin.H{"ok": true})
}

func (h *AccountHandler) Bookings(c *gin.Context) {
	ctx := apiCtx(c)
	vehicleBookings, err := h.Svc.VehicleBookings(ctx)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	tourBookings, err := h.Svc.TourBookings(ctx)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicleBookings": vehicleBookings,
		"tourBookings":    tourBookings,
	})
}

func (h *AccountHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid booking id"})
		return
	}
	if err := h.Svc.CancelVehicleBooking(apiCtx(c), id); err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
