package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/ticketreport/config"
	"github.com/Domenick1991/ticketreport/internal/cache"
	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/Domenick1991/ticketreport/internal/kafka"
	"github.com/Domenick1991/ticketreport/internal/report"
	"github.com/Domenick1991/ticketreport/internal/repository"
	"github.com/Domenick1991/ticketreport/internal/service/tickets"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service, closeAdapters := newTicketService(cfg)
	code := run(ctx, os.Args[1:], os.Stdout, service)
	closeAdapters()
	stop()
	os.Exit(code)
}

func newTicketService(cfg *config.Config) (*tickets.TicketService, func()) {
	var (
		opts    []tickets.TicketServiceOption
		closers []io.Closer
	)

	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.ReportTTLSeconds)*time.Second)
		opts = append(opts, tickets.WithCache(redisCache))
		closers = append(closers, redisCache)
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		opts = append(opts, tickets.WithProducer(producer, cfg.Kafka.ReportsTopic))
		closers = append(closers, producer)
	}

	route := domain.Route{
		Origin:      cfg.Route.Origin,
		Destination: cfg.Route.Destination,
		Between:     cfg.Route.Between,
		Title:       cfg.Route.Title,
	}
	return tickets.NewTicketService(route, opts...), func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("close adapter: %v", err)
			}
		}
	}
}

// run executes one report and returns the process exit code. Nothing is
// written to out unless the whole report was built.
func run(ctx context.Context, args []string, out io.Writer, service *tickets.TicketService) int {
	path, err := ticketsPath(args)
	if errors.Is(err, domain.ErrUsage) {
		fmt.Fprint(out, report.UsageLine)
		return 0
	}

	r, err := service.BuildFrom(ctx, repository.NewFileTicketRepository(path))
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		fmt.Fprintf(out, report.FileNotFoundLine, path)
		return 0
	case errors.Is(err, domain.ErrNoTickets):
		if err := report.WriteNotFound(out, service.Route()); err != nil {
			log.Printf("write output: %v", err)
			return 1
		}
		return 0
	case err != nil:
		log.Printf("build report: %v", err)
		return 1
	}

	if err := report.Write(out, r); err != nil {
		log.Printf("write output: %v", err)
		return 1
	}
	return 0
}

func ticketsPath(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", domain.ErrUsage
	}
	return args[0], nil
}
