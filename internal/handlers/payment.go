package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BLVNQ/buildconnect-server/internal/payment"
	"github.com/BLVNQ/buildconnect-server/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentSvc
}

func NewPaymentHandler(svc *service.PaymentSvc) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// POST /api/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var in struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), *in.Amount)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		// upstream failures keep their own status code and payload
		var pe *payment.Error
		if errors.As(err, &pe) {
			c.JSON(pe.StatusCode, gin.H{"error": pe})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
