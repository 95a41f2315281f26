package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamify/models"
	"roamify/services/vendor"
	"roamify/session"
)

// VendorHandler renders the vendor dashboard and the vendor's own listings.
type VendorHandler struct {
	Svc      vendor.Service
	Sessions *session.Manager
}

func NewVendorHandler(svc vendor.Service, sessions *session.Manager) *VendorHandler {
	return &VendorHandler{Svc: svc, Sessions: sessions}
}

func (h *VendorHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.Svc.Overview(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *VendorHandler) Tours(c *gin.Context) {
	tours, err := h.Svc.Tours(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (h *VendorHandler) CreateTour(c *gin.Context) {
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

func (h *VendorHandler) UpdateTour(c *gin.Context) {
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

func (h *VendorHandler) DeleteTour(c *gin.Context) {
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

func (h *VendorHandler) Vehicles(c *gin.Context) {
	vehicles, err := h.Svc.Vehicles(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *VendorHandler) CreateVehicle(c *gin.Context) {
	var v models.VehicleInput
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	vehicles, err := h.Svc.CreateVehicle(apiCtx(c), v)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicles": vehicles})
}

func (h *VendorHandler) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var v models.VehicleInput
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	vehicles, err := h.Svc.UpdateVehicle(apiCtx(c), id, v)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *VendorHandler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicles, err := h.Svc.DeleteVehicle(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
