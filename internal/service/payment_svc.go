package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/BLVNQ/buildconnect-server/internal/payment"
)

type PaymentSvc struct {
	orders   payment.Orders
	currency string
}

func NewPaymentSvc(orders payment.Orders, currency string) *PaymentSvc {
	return &PaymentSvc{orders: orders, currency: currency}
}

// CreateOrder validates the major-unit amount, converts to minor units
// (rounded, not truncated, to dodge float artifacts) and delegates. The
// upstream order comes back unmodified.
func (s *PaymentSvc) CreateOrder(ctx context.Context, amount float64) (*payment.Order, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 1 {
		return nil, invalidf("amount must be a number greater than or equal to 1")
	}
	minor := int64(math.Round(amount * 100))
	receiptID := fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	return s.orders.Create(ctx, minor, s.currency, receiptID)
}
