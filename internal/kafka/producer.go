package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/segmentio/kafka-go"
)

type CarrierMinimum struct {
	Carrier string `json:"carrier"`
	Minutes int64  `json:"minutes"`
}

// ReportEvent is published once per freshly built report.
type ReportEvent struct {
	ID          string           `json:"id"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	TicketCount int              `json:"ticket_count"`
	Carriers    []CarrierMinimum `json:"carriers"`
	MeanPrice   float64          `json:"mean_price"`
	MedianPrice float64          `json:"median_price"`
	Difference  float64          `json:"difference"`
	CreatedAt   time.Time        `json:"created_at"`
}

func NewReportEvent(r *domain.Report) ReportEvent {
	carriers := make([]CarrierMinimum, 0, len(r.MinFlightTimes))
	for _, c := range r.MinFlightTimes {
		carriers = append(carriers, CarrierMinimum{Carrier: c.Carrier, Minutes: int64(c.Duration / time.Minute)})
	}
	return ReportEvent{
		ID:          r.ID,
		Origin:      r.Route.Origin,
		Destination: r.Route.Destination,
		TicketCount: r.TicketCount,
		Carriers:    carriers,
		MeanPrice:   r.Prices.Mean,
		MedianPrice: r.Prices.Median,
		Difference:  r.Prices.Difference,
		CreatedAt:   r.CreatedAt,
	}
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("published to Kafka - topic: %s, key: %s", topic, key)
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
