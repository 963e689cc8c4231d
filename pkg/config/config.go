package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Mongo
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"buildconnect"`

	// Omise
	OmisePublicKey string `envconfig:"OMISE_PUBLIC_KEY" required:"true"`
	OmiseSecretKey string `envconfig:"OMISE_SECRET_KEY" required:"true"`
	Currency       string `envconfig:"PAYMENT_CURRENCY" default:"inr"`

	// SMTP (empty host falls back to console notifications)
	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`
	MailFrom string `envconfig:"MAIL_FROM" default:"no-reply@buildconnect.local"`

	// RabbitMQ (empty URL means booking events are delivered in-process)
	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	NotifyQueue     string `envconfig:"NOTIFY_QUEUE" default:"notification.q"`
	NotifyDLX       string `envconfig:"NOTIFY_DLX" default:"notification.dlx"`
	NotifyDLQ       string `envconfig:"NOTIFY_DLQ" default:"notification.q.dlq"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
