// Package notify delivers booking notifications on their own error
// channel: failures here are logged and never join the request outcome.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/identity"
	"github.com/BLVNQ/buildconnect-server/internal/mail"
	"github.com/BLVNQ/buildconnect-server/pkg/mq"
)

type Notifier interface {
	BookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) error
	BookingCancelled(ctx context.Context, ev BookingCancelledEvent) error
}

// MailNotifier sends inline: account email lookup, then one send attempt.
type MailNotifier struct {
	ids    identity.Service
	mailer mail.Mailer
	log    *zap.Logger
}

func NewMailNotifier(ids identity.Service, mailer mail.Mailer, log *zap.Logger) *MailNotifier {
	return &MailNotifier{ids: ids, mailer: mailer, log: log}
}

func (n *MailNotifier) BookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) error {
	acct, err := n.ids.LookupAccount(ctx, ev.ClientID)
	if err != nil {
		return err
	}
	subject, body, err := mail.Confirmation(ev.BookingID, ev.Items, ev.TotalAmount, ev.SiteLocation, ev.BookingDate)
	if err != nil {
		return err
	}
	return n.mailer.Send(acct.Email, subject, body)
}

func (n *MailNotifier) BookingCancelled(ctx context.Context, ev BookingCancelledEvent) error {
	n.log.Info("booking cancelled", zap.String("booking_id", ev.BookingID))
	return nil
}

// Publisher hands events to RabbitMQ; the notify worker does the sending.
type Publisher struct {
	pub *mq.Publisher
}

func NewPublisher(pub *mq.Publisher) *Publisher {
	return &Publisher{pub: pub}
}

func (p *Publisher) BookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) error {
	return p.pub.PublishJSON(ctx, RKBookingConfirmed, ev)
}

func (p *Publisher) BookingCancelled(ctx context.Context, ev BookingCancelledEvent) error {
	return p.pub.PublishJSON(ctx, RKBookingCancelled, ev)
}
