package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
}

type ticketsDocument struct {
	Tickets []ticketRecord `json:"tickets" validate:"required,dive"`
}

// Required fields are pointers: a field must be present, an empty string is
// still a value.
type ticketRecord struct {
	Origin        *string  `json:"origin" validate:"required"`
	Destination   *string  `json:"destination" validate:"required"`
	Carrier       *string  `json:"carrier" validate:"required"`
	DepartureDate string   `json:"departure_date" validate:"required_with=ArrivalDate"`
	DepartureTime *string  `json:"departure_time" validate:"required"`
	ArrivalDate   string   `json:"arrival_date" validate:"required_with=DepartureDate"`
	ArrivalTime   *string  `json:"arrival_time" validate:"required"`
	Price         *float64 `json:"price" validate:"required"`
}

var validate = validator.New()

// DecodeTickets reads a {"tickets": [...]} document, with or without a
// leading UTF-8 byte order mark. Any syntax or schema problem is reported as
// domain.ErrInvalidInput.
func DecodeTickets(r io.Reader) ([]domain.Ticket, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var doc ticketsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode tickets: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	tickets := make([]domain.Ticket, 0, len(doc.Tickets))
	for _, rec := range doc.Tickets {
		tickets = append(tickets, domain.Ticket{
			Origin:        *rec.Origin,
			Destination:   *rec.Destination,
			Carrier:       *rec.Carrier,
			DepartureDate: rec.DepartureDate,
			DepartureTime: *rec.DepartureTime,
			ArrivalDate:   rec.ArrivalDate,
			ArrivalTime:   *rec.ArrivalTime,
			Price:         *rec.Price,
		})
	}
	return tickets, nil
}

// FileTicketRepository reads tickets from a JSON file on every List call.
type FileTicketRepository struct {
	path string
}

func NewFileTicketRepository(path string) *FileTicketRepository {
	return &FileTicketRepository{path: path}
}

func (r *FileTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, r.path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, r.path, err)
	}
	defer f.Close()

	tickets, err := DecodeTickets(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return tickets, nil
}

var _ TicketRepository = (*FileTicketRepository)(nil)
