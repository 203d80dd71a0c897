package tickets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/Domenick1991/ticketreport/internal/kafka"
	"github.com/Domenick1991/ticketreport/internal/repository"
	"github.com/google/uuid"
)

type ReportUseCase interface {
	Build(ctx context.Context, tickets []domain.Ticket) (*domain.Report, error)
	BuildFrom(ctx context.Context, repo repository.TicketRepository) (*domain.Report, error)
}

type ReportCache interface {
	GetReport(ctx context.Context, key string) (*domain.Report, error)
	SetReport(ctx context.Context, key string, report *domain.Report) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketService struct {
	route        domain.Route
	cache        ReportCache
	producer     Producer
	reportsTopic string
	now          func() time.Time
	newID        func() string
}

type TicketServiceOption func(*TicketService)

func WithCache(cache ReportCache) TicketServiceOption {
	return func(s *TicketService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, topic string) TicketServiceOption {
	return func(s *TicketService) {
		s.producer = producer
		s.reportsTopic = topic
	}
}

func WithClock(now func() time.Time) TicketServiceOption {
	return func(s *TicketService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) TicketServiceOption {
	return func(s *TicketService) {
		s.newID = newID
	}
}

func NewTicketService(route domain.Route, opts ...TicketServiceOption) *TicketService {
	s := &TicketService{
		route: route,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TicketService) Route() domain.Route {
	return s.route
}

func (s *TicketService) BuildFrom(ctx context.Context, repo repository.TicketRepository) (*domain.Report, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	return s.Build(ctx, all)
}

// Build filters tickets by the service route and aggregates them. Either the
// whole report is returned or an error, never both.
func (s *TicketService) Build(ctx context.Context, tickets []domain.Ticket) (*domain.Report, error) {
	filtered := FilterByRoute(tickets, s.route)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrNoTickets, s.route.Origin, s.route.Destination)
	}

	key := s.cacheKey(filtered)
	if s.cache != nil && key != "" {
		cached, err := s.cache.GetReport(ctx, key)
		if err != nil {
			log.Printf("report cache get error: %v", err)
		} else if cached != nil {
			cached.Route = s.route
			return cached, nil
		}
	}

	minTimes, err := MinFlightTimes(filtered)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:             s.newID(),
		Route:          s.route,
		MinFlightTimes: minTimes,
		Prices:         PriceDifference(filtered),
		TicketCount:    len(filtered),
		CreatedAt:      s.now().UTC(),
	}

	if s.cache != nil && key != "" {
		if err := s.cache.SetReport(ctx, key, report); err != nil {
			log.Printf("report cache set error: %v", err)
		}
	}

	if s.producer != nil && s.reportsTopic != "" {
		if err := s.producer.Publish(ctx, s.reportsTopic, report.ID, kafka.NewReportEvent(report)); err != nil {
			log.Printf("publish report %s error: %v", report.ID, err)
		}
	}

	return report, nil
}

// cacheKey identifies the route tickets by content.
func (s *TicketService) cacheKey(filtered []domain.Ticket) string {
	data, err := json.Marshal(filtered)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return s.route.Origin + ":" + s.route.Destination + ":" + hex.EncodeToString(sum[:])
}

var _ ReportUseCase = (*TicketService)(nil)
