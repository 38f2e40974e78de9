package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rentwise/rentwise/config"
	"github.com/rentwise/rentwise/internal/application"
	"github.com/rentwise/rentwise/internal/infrastructure/rabbitmq"
	"github.com/rentwise/rentwise/internal/infrastructure/redisbus"
	"github.com/rentwise/rentwise/pkg/helpers"
	"github.com/rentwise/rentwise/pkg/mailer"
)

// Worker binary for the notification relay: consumes lifecycle events off
// the tenant request queue and hands each one to RelayService. Every
// delivery is acked whether or not fan-out succeeded.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-relay", cfg.Env)

	if cfg.RabbitMQURL == "" {
		log.Fatal("RabbitMQ not configured")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp connect: %v", err)
	}
	defer consumer.Close()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	var mail application.MailSender
	if cfg.MailSendEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			log.Fatal("MAIL_SEND_ENABLED=true but Mailgun not configured")
		}
		mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	relay := application.NewRelayService(redisbus.NewBroadcaster(rdb, cfg.BroadcastChannel), mail, logger)

	deliveries, err := consumer.Consume()
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx := context.Background()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for d := range deliveries {
			if d.Event == nil {
				logger.Warn("discarding undecodable message")
				_ = d.Discard()
				continue
			}
			relay.Handle(ctx, d.Event)
			if err := d.Ack(); err != nil {
				logger.WithError(err).Warn("ack failed")
			}
		}
	}()

	select {
	case <-stop:
		logger.Info("shutting down relay worker")
		consumer.Close()
		<-done
	case <-done:
		logger.Info("delivery channel closed")
	}
	logger.Info("relay worker exited")
}
