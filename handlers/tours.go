package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamify/services/tours"
	"roamify/session"
)

// TourHandler renders the tour catalog, detail and booking pages.
type TourHandler struct {
	Svc      tours.Service
	Sessions *session.Manager
}

func NewTourHandler(svc tours.Service, sessions *session.Manager) *TourHandler {
	return &TourHandler{Svc: svc, Sessions: sessions}
}

func (h *TourHandler) List(c *gin.Context) {
	list, err := h.Svc.List(apiCtx(c))
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": list})
}

func (h *TourHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid tour id"})
		return
	}
	tour, err := h.Svc.Get(apiCtx(c), id)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": tour})
}

func (h *TourHandler) CheckAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid tour id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, PageError{Error: "date is required"})
		return
	}
	guests, _ := strconv.Atoi(c.Query("guests"))

	availability, err := h.Svc.CheckAvailability(apiCtx(c), id, date, guests)
	if err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// Book submits the booking form and renders the confirmation panel with the
// backend's booking id and total price.
func (h *TourHandler) Book(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid tour id"})
		return
	}
	var form tours.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}

	confirmation, err := h.Svc.Book(apiCtx(c), id, form)
	if err != nil {
		if errors.Is(err, tours.ErrInvalidForm) {
			c.JSON(http.StatusBadRequest, PageError{Error: err.Error()})
			return
		}
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"confirmation": confirmation})
}
