package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTickets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileTicketRepository_List_DateTimeSchema(t *testing.T) {
	path := writeTickets(t, `{"tickets": [
		{"origin": "VVO", "origin_name": "Владивосток", "destination": "TLV", "destination_name": "Тель-Авив",
		 "departure_date": "12.05.18", "departure_time": "16:20", "arrival_date": "12.05.18", "arrival_time": "22:10",
		 "carrier": "TK", "stops": 3, "price": 12400},
		{"origin": "LRN", "destination": "UFA", "departure_date": "12.05.18", "departure_time": "9:40",
		 "arrival_date": "12.05.18", "arrival_time": "19:25", "carrier": "SU", "price": 15300}
	]}`)

	tickets, err := NewFileTicketRepository(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	assert.Equal(t, domain.Ticket{
		Origin:        "VVO",
		Destination:   "TLV",
		Carrier:       "TK",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         12400,
	}, tickets[0])
	assert.Equal(t, "LRN", tickets[1].Origin)
	assert.True(t, tickets[0].HasDates())
}

func TestFileTicketRepository_List_TimeOnlySchema(t *testing.T) {
	path := writeTickets(t, `{"tickets": [
		{"origin": "VVO", "destination": "TLV", "departure_time": "23:30", "arrival_time": "1:00", "carrier": "S7", "price": 100.5}
	]}`)

	tickets, err := NewFileTicketRepository(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.False(t, tickets[0].HasDates())
	assert.Equal(t, 100.5, tickets[0].Price)
}

func TestFileTicketRepository_List_NotFound(t *testing.T) {
	repo := NewFileTicketRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestFileTicketRepository_List_MalformedJSON(t *testing.T) {
	path := writeTickets(t, `{"tickets": [`)

	_, err := NewFileTicketRepository(path).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecodeTickets_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"no tickets array":  `{"flights": []}`,
		"missing carrier":   `{"tickets": [{"origin": "VVO", "destination": "TLV", "departure_time": "10:00", "arrival_time": "12:00", "price": 1}]}`,
		"missing price":     `{"tickets": [{"origin": "VVO", "destination": "TLV", "carrier": "TK", "departure_time": "10:00", "arrival_time": "12:00"}]}`,
		"missing time":      `{"tickets": [{"origin": "VVO", "destination": "TLV", "carrier": "TK", "departure_time": "10:00", "price": 1}]}`,
		"one date only":     `{"tickets": [{"origin": "VVO", "destination": "TLV", "carrier": "TK", "departure_date": "01.01.20", "departure_time": "10:00", "arrival_time": "12:00", "price": 1}]}`,
		"price wrong type":  `{"tickets": [{"origin": "VVO", "destination": "TLV", "carrier": "TK", "departure_time": "10:00", "arrival_time": "12:00", "price": "cheap"}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTickets(strings.NewReader(body))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDecodeTickets_EmptyList(t *testing.T) {
	tickets, err := DecodeTickets(strings.NewReader(`{"tickets": []}`))
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestFileTicketRepository_List_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileTicketRepository("tickets.json").List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeTickets_ByteOrderMark(t *testing.T) {
	body := "\ufeff" + `{"tickets": [
		{"origin": "VVO", "destination": "TLV", "carrier": "TK", "departure_time": "10:00", "arrival_time": "12:00", "price": 100}
	]}`

	tickets, err := DecodeTickets(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "VVO", tickets[0].Origin)
}

func TestFileTicketRepository_List_ByteOrderMark(t *testing.T) {
	path := writeTickets(t, "\ufeff"+`{"tickets": [
		{"origin": "VVO", "destination": "TLV", "carrier": "S7", "departure_time": "23:30", "arrival_time": "1:00", "price": 300}
	]}`)

	tickets, err := NewFileTicketRepository(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "S7", tickets[0].Carrier)
}

func TestDecodeTickets_EmptyStringsArePresent(t *testing.T) {
	body := `{"tickets": [
		{"origin": "VVO", "destination": "TLV", "carrier": "", "departure_time": "10:00", "arrival_time": "12:00", "price": 0}
	]}`

	tickets, err := DecodeTickets(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "", tickets[0].Carrier)
	assert.Equal(t, 0.0, tickets[0].Price)
}

func TestDecodeTickets_NullCarrier(t *testing.T) {
	body := `{"tickets": [
		{"origin": "VVO", "destination": "TLV", "carrier": null, "departure_time": "10:00", "arrival_time": "12:00", "price": 1}
	]}`

	_, err := DecodeTickets(strings.NewReader(body))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
