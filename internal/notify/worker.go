package notify

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/identity"
	"github.com/BLVNQ/buildconnect-server/internal/mail"
	"github.com/BLVNQ/buildconnect-server/pkg/mq"
)

// Worker consumes booking events and sends the corresponding email.
type Worker struct {
	consumer *mq.Consumer
	ids      identity.Service
	mailer   mail.Mailer
	log      *zap.Logger
}

func NewWorker(consumer *mq.Consumer, ids identity.Service, mailer mail.Mailer, log *zap.Logger) *Worker {
	return &Worker{consumer: consumer, ids: ids, mailer: mailer, log: log}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.consumer.Deliveries(ctx, "notify-worker")
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(ctx, d); err != nil {
				w.log.Warn("notify handle failed",
					zap.String("routing_key", d.RoutingKey), zap.Error(err))
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case RKBookingConfirmed:
		ev, err := decode[BookingConfirmedEvent](d.Body)
		if err != nil {
			return err
		}
		return w.sendConfirmation(ctx, ev)
	case RKBookingCancelled:
		ev, err := decode[BookingCancelledEvent](d.Body)
		if err != nil {
			return err
		}
		w.log.Info("booking cancelled", zap.String("booking_id", ev.BookingID))
		return nil
	default:
		// unknown key: ack and move on
		w.log.Info("skip unknown routing key", zap.String("routing_key", d.RoutingKey))
		return nil
	}
}

func (w *Worker) sendConfirmation(ctx context.Context, ev BookingConfirmedEvent) error {
	acct, err := w.ids.LookupAccount(ctx, ev.ClientID)
	if err != nil {
		return err
	}
	subject, body, err := mail.Confirmation(ev.BookingID, ev.Items, ev.TotalAmount, ev.SiteLocation, ev.BookingDate)
	if err != nil {
		return err
	}
	return w.mailer.Send(acct.Email, subject, body)
}
