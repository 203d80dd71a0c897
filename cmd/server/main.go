package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/ticketreport/api"
	"github.com/Domenick1991/ticketreport/config"
	"github.com/Domenick1991/ticketreport/internal/bootstrap"
	"github.com/Domenick1991/ticketreport/internal/cache"
	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/Domenick1991/ticketreport/internal/kafka"
	"github.com/Domenick1991/ticketreport/internal/repository"
	"github.com/Domenick1991/ticketreport/internal/service/tickets"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store repository.TicketRepository
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		store = repository.NewPGTicketRepository(pool)
	}

	var opts []tickets.TicketServiceOption
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.ReportTTLSeconds)*time.Second)
		defer redisCache.Close()
		opts = append(opts, tickets.WithCache(redisCache))
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, tickets.WithProducer(producer, cfg.Kafka.ReportsTopic))
	}

	route := domain.Route{
		Origin:      cfg.Route.Origin,
		Destination: cfg.Route.Destination,
		Between:     cfg.Route.Between,
		Title:       cfg.Route.Title,
	}
	service := tickets.NewTicketService(route, opts...)

	log.Printf("serving reports for %s -> %s on %s", route.Origin, route.Destination, cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, api.NewReportHandler(service, store)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
