package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/identity"
	"github.com/BLVNQ/buildconnect-server/internal/mail"
	"github.com/BLVNQ/buildconnect-server/internal/notify"
	"github.com/BLVNQ/buildconnect-server/internal/repository"
	"github.com/BLVNQ/buildconnect-server/pkg/config"
	"github.com/BLVNQ/buildconnect-server/pkg/mq"
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
	if cfg.RabbitURL == "" {
		log.Fatal("RABBIT_URL is required for the notify worker")
	}

	logger := must(zap.NewProduction())
	defer logger.Sync()

	db := must(repository.Open(context.Background(), cfg.MongoURI, cfg.MongoDB))
	ids := identity.NewMongoService(db)

	var mailer mail.Mailer = mail.NewConsole(logger)
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	var consumer *mq.Consumer
	for {
		c, err := mq.NewConsumer(mq.ConsumerConfig{
			URL:      cfg.RabbitURL,
			Exchange: cfg.BookingExchange,
			Queue:    cfg.NotifyQueue,
			Bindings: []string{"booking.*"},
			Prefetch: 16,
			UseDLX:   true,
			DLXName:  cfg.NotifyDLX,
			DLXQueue: cfg.NotifyDLQ,
		})
		if err != nil {
			logger.Warn("rabbitmq connect failed, retrying", zap.Error(err))
			time.Sleep(2 * time.Second)
			continue
		}
		consumer = c
		break
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := notify.NewWorker(consumer, ids, mailer, logger)
	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Error("worker stopped", zap.Error(err))
		}
	}()
	logger.Info("notify worker started",
		zap.String("queue", cfg.NotifyQueue), zap.String("exchange", cfg.BookingExchange))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}
