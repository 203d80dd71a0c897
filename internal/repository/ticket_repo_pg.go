package repository

import (
	"context"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewPGTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT origin, destination, carrier, departure_date, departure_time, arrival_date, arrival_time, price FROM tickets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var (
			t                          domain.Ticket
			departureDate, arrivalDate *string
		)
		if err := rows.Scan(&t.Origin, &t.Destination, &t.Carrier, &departureDate, &t.DepartureTime, &arrivalDate, &t.ArrivalTime, &t.Price); err != nil {
			return nil, err
		}
		if departureDate != nil {
			t.DepartureDate = *departureDate
		}
		if arrivalDate != nil {
			t.ArrivalDate = *arrivalDate
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
