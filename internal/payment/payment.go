// Package payment is the payment-order capability. Orders are ephemeral:
// created upstream on demand and handed back to the caller unmodified.
package payment

import (
	"context"
	"fmt"
)

// Order is the upstream payment order, minor currency units.
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	ReceiptID string `json:"receiptId"`
	Status    string `json:"status"`
}

// Error carries the upstream failure so handlers can surface its status
// code and payload verbatim.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment: %s: %s", e.Code, e.Message)
}

type Orders interface {
	Create(ctx context.Context, amountMinor int64, currency, receiptID string) (*Order, error)
}
