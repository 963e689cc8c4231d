package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /api/create-booking
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		UserID         string               `json:"userId"`
		CartItems      []domain.BookingItem `json:"cartItems"`
		TotalPrice     float64              `json:"totalPrice"`
		PaymentDetails map[string]any       `json:"paymentDetails"`
		SiteLocation   string               `json:"siteLocation"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.Create(c.Request.Context(), service.CreateBookingInput{
		UserID:         in.UserID,
		CartItems:      in.CartItems,
		TotalPrice:     in.TotalPrice,
		PaymentDetails: in.PaymentDetails,
		SiteLocation:   in.SiteLocation,
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "bookingId": id})
}

// GET /api/my-bookings/:userId
func (h *BookingHandler) MyBookings(c *gin.Context) {
	out, err := h.svc.ForClient(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []domain.Booking{}
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/bookings/:bookingId/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("bookingId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
