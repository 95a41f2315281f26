package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamify/models"
	"roamify/services/vehicles"
	"roamify/session"
)

// VehicleHandler renders the vehicle list/detail pages and the rental
// booking flow.
type VehicleHandler struct {
	Svc      vehicles.Service
	Sessions *session.Manager
}

func NewVehicleHandler(svc vehicles.Service, sessions *session.Manager) *VehicleHandler {
	return &VehicleHandler{Svc: svc, Sessions: sessions}
}

// List is the landing page: all vehicles, narrowed by the optional type,
// availability and price filters.
func (h *VehicleHandler) List(c *gin.Context) {
	filter := vehicles.Filter{
		Type:          c.Query("type"),
		OnlyAvailable: c.Query("available") == "true",
	}
	if v, ok := parsePrice(c.Query("minPrice")); ok {
		filter.MinPrice = &v
	}
	if v, ok := parsePrice(c.Query("maxPrice")); ok {
		filter.MaxPrice = &v
	}

	list, err := h.Svc.Browse(apiCtx(c), filter)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": list})
}

// parsePrice ignores blank and malformed bounds the way a native number
// input would.
func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func (h *VehicleHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid vehicle id"})
		return
	}
	vehicle, err := h.Svc.Get(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (h *VehicleHandler) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "latitude and longitude are required"})
		return
	}
	radius, _ := strconv.ParseFloat(c.Query("radius"), 64)

	list, err := h.Svc.Nearby(apiCtx(c), lat, lon, radius)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": list})
}

// CheckAvailability backs the date pickers on the detail page.
func (h *VehicleHandler) CheckAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid vehicle id"})
		return
	}
	start, end := c.Query("startTime"), c.Query("endTime")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, PageError{Error: "startTime and endTime are required"})
		return
	}
	res, err := h.Svc.CheckAvailability(apiCtx(c), id, start, end)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VehicleHandler) Book(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid vehicle id"})
		return
	}
	var req models.VehicleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	req.VehicleID = id

	booking, err := h.Svc.Book(apiCtx(c), req)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}
