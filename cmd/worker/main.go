package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/ticketreport/config"
	"github.com/Domenick1991/ticketreport/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("kafka brokers and reports topic must be configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ReportsTopic)
	defer consumer.Close()

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeReportEvent(msg)
		if err != nil {
			log.Printf("skip message at offset %d: %v", msg.Offset, err)
			return nil
		}
		log.Print(summary(event))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("consumer stopped: %v", err)
	}
}
