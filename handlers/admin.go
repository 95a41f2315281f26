package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamify/backend"
	"roamify/models"
	"roamify/services/admin"
	"roamify/session"
)

// AdminHandler renders the admin dashboard: tour and hidden-gem management,
// booking oversight and vendor approvals.
type AdminHandler struct {
	Svc      admin.Service
	Sessions *session.Manager
}

func NewAdminHandler(svc admin.Service, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{Svc: svc, Sessions: sessions}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid id"})
		return 0, false
	}
	return id, true
}

// --- tours ---

func (h *AdminHandler) Tours(c *gin.Context) {
	tours, err := h.Svc.Tours(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (h *AdminHandler) CreateTour(c *gin.Context) {
	var t models.TourPackage
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	tours, err := h.Svc.CreateTour(apiCtx(c), t)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tours": tours})
}

func (h *AdminHandler) UpdateTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var t models.TourPackage
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	tours, err := h.Svc.UpdateTour(apiCtx(c), id, t)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (h *AdminHandler) DeleteTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tours, err := h.Svc.DeleteTour(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// --- hidden gems ---

func (h *AdminHandler) HiddenGems(c *gin.Context) {
	q := backend.HiddenGemQuery{Search: c.Query("search")}
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Size, _ = strconv.Atoi(c.Query("size"))

	page, err := h.Svc.HiddenGems(apiCtx(c), q)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) CreateHiddenGem(c *gin.Context) {
	var g models.HiddenGemInput
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	gem, err := h.Svc.CreateHiddenGem(apiCtx(c), g)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gem": gem})
}

func (h *AdminHandler) UpdateHiddenGem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var g models.HiddenGemInput
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	gem, err := h.Svc.UpdateHiddenGem(apiCtx(c), id, g)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gem": gem})
}

func (h *AdminHandler) DeleteHiddenGem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteHiddenGem(apiCtx(c), id); err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- bookings ---

func (h *AdminHandler) TourBookings(c *gin.Context) {
	bookings, err := h.Svc.TourBookings(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) UpdateTourBookingStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, PageError{Error: "status is required"})
		return
	}
	bookings, err := h.Svc.UpdateTourBookingStatus(apiCtx(c), c.Param("id"), status)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) CancelTourBooking(c *gin.Context) {
	bookings, err := h.Svc.CancelTourBooking(apiCtx(c), c.Param("id"))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) VehicleBookings(c *gin.Context) {
	bookings, err := h.Svc.VehicleBookings(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) UpdateVehicleBookingStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, PageError{Error: "status is required"})
		return
	}
	bookings, err := h.Svc.UpdateVehicleBookingStatus(apiCtx(c), id, status)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) CancelVehicleBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bookings, err := h.Svc.CancelVehicleBooking(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) CreateVehicle(c *gin.Context) {
	var v models.VehicleInput
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	vehicle, err := h.Svc.CreateVehicle(apiCtx(c), v)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// --- vendor approvals ---

func (h *AdminHandler) VendorRequests(c *gin.Context) {
	requests, err := h.Svc.PendingVendors(apiCtx(c), c.Query("status"))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ApproveVendor approves and responds with the refreshed pending list; the
// approved row is no longer in it.
func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	requests, err := h.Svc.ApproveVendor(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *AdminHandler) RejectVendor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	// A missing body means rejection without a stated reason.
	_ = c.ShouldBindJSON(&body)

	requests, err := h.Svc.RejectVendor(apiCtx(c), id, body.Reason)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
