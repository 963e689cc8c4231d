package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/handlers"
	"github.com/BLVNQ/buildconnect-server/internal/identity"
	"github.com/BLVNQ/buildconnect-server/internal/mail"
	"github.com/BLVNQ/buildconnect-server/internal/notify"
	"github.com/BLVNQ/buildconnect-server/internal/payment"
	"github.com/BLVNQ/buildconnect-server/internal/repository"
	"github.com/BLVNQ/buildconnect-server/internal/service"
	"github.com/BLVNQ/buildconnect-server/pkg/config"
	"github.com/BLVNQ/buildconnect-server/pkg/mq"
	"github.com/BLVNQ/buildconnect-server/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	logger := must(zap.NewProduction())
	defer logger.Sync()

	shutdown := obs.InitTracer("buildconnect-api")
	defer shutdown(context.Background())

	ctx := context.Background()
	db := must(repository.Open(ctx, cfg.MongoURI, cfg.MongoDB))

	bookings := repository.NewBookingRepo(db)
	listings := repository.NewListingRepo(db)
	users := repository.NewUserRepo(db)
	ids := identity.NewMongoService(db)
	orders := must(payment.NewOmiseOrders(cfg.OmisePublicKey, cfg.OmiseSecretKey))

	var mailer mail.Mailer = mail.NewConsole(logger)
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	// With RabbitMQ configured, booking events go to the notify worker;
	// otherwise the confirmation mail is sent from the request path.
	var notifier notify.Notifier
	if cfg.RabbitURL != "" {
		pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
		defer pub.Close()
		notifier = notify.NewPublisher(pub)
	} else {
		notifier = notify.NewMailNotifier(ids, mailer, logger)
	}

	bh := handlers.NewBookingHandler(service.NewBookingSvc(bookings, notifier, logger))
	ph := handlers.NewPaymentHandler(service.NewPaymentSvc(orders, cfg.Currency))
	lh := handlers.NewListingHandler(service.NewListingSvc(listings))
	ah := handlers.NewAuthHandler(service.NewAccountSvc(ids, users))

	r := handlers.NewRouter(logger, bh, ph, lh, ah)
	logger.Info("api listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
