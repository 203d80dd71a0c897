package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportEvent(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := &domain.Report{
		ID:    "r-1",
		Route: domain.Route{Origin: "VVO", Destination: "TLV"},
		MinFlightTimes: []domain.CarrierDuration{
			{Carrier: "S7", Duration: 6*time.Hour + 45*time.Minute},
			{Carrier: "TK", Duration: 90 * time.Minute},
		},
		Prices:      domain.PriceStats{Mean: 200, Median: 150, Difference: 50},
		TicketCount: 3,
		CreatedAt:   createdAt,
	}

	event := NewReportEvent(report)

	assert.Equal(t, "r-1", event.ID)
	assert.Equal(t, "VVO", event.Origin)
	assert.Equal(t, "TLV", event.Destination)
	assert.Equal(t, []CarrierMinimum{{Carrier: "S7", Minutes: 405}, {Carrier: "TK", Minutes: 90}}, event.Carriers)
	assert.Equal(t, 50.0, event.Difference)
	assert.Equal(t, createdAt, event.CreatedAt)
}

func TestDecodeReportEvent(t *testing.T) {
	event := ReportEvent{ID: "r-2", Origin: "VVO", Destination: "TLV", TicketCount: 1, MeanPrice: 100}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeReportEvent(kafka.Message{Value: data})
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.MeanPrice, decoded.MeanPrice)

	_, err = DecodeReportEvent(kafka.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestProducer_Close(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	assert.NoError(t, p.Close())
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
