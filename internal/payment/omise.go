package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseOrders creates orders as Omise charges, receipt id in metadata.
type OmiseOrders struct {
	client *omise.Client
}

func NewOmiseOrders(publicKey, secretKey string) (*OmiseOrders, error) {
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	c.SetDebug(false)
	return &OmiseOrders{client: c}, nil
}

func (o *OmiseOrders) Create(ctx context.Context, amountMinor int64, currency, receiptID string) (*Order, error) {
	ch := &omise.Charge{}
	req := &operations.CreateCharge{
		Amount:   amountMinor,
		Currency: currency,
		Metadata: map[string]interface{}{"receipt_id": receiptID},
	}
	if err := o.client.Do(ch, req); err != nil {
		var oe *omise.Error
		if errors.As(err, &oe) {
			status := oe.StatusCode
			if status == 0 {
				status = http.StatusBadGateway
			}
			return nil, &Error{StatusCode: status, Code: oe.Code, Message: oe.Message}
		}
		return nil, &Error{StatusCode: http.StatusBadGateway, Code: "upstream_error", Message: err.Error()}
	}
	return &Order{
		ID:        ch.ID,
		Amount:    ch.Amount,
		Currency:  ch.Currency,
		ReceiptID: receiptID,
		Status:    string(ch.Status),
	}, nil
}
