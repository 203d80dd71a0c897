package api

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/Domenick1991/ticketreport/internal/report"
	"github.com/Domenick1991/ticketreport/internal/repository"
	"github.com/Domenick1991/ticketreport/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service tickets.ReportUseCase
	store   repository.TicketRepository
}

type carrierResponse struct {
	Carrier         string `json:"carrier"`
	Hours           int64  `json:"hours"`
	Minutes         int64  `json:"minutes"`
	DurationMinutes int64  `json:"duration_minutes"`
}

type reportResponse struct {
	ID             string            `json:"id"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	TicketCount    int               `json:"ticket_count"`
	MinFlightTimes []carrierResponse `json:"min_flight_times"`
	MeanPrice      float64           `json:"mean_price"`
	MedianPrice    float64           `json:"median_price"`
	Difference     float64           `json:"difference"`
	CreatedAt      string            `json:"created_at"`
}

// NewReportHandler serves reports built from request bodies; store, when not
// nil, backs GET requests.
func NewReportHandler(service tickets.ReportUseCase, store repository.TicketRepository) *ReportHandler {
	return &ReportHandler{service: service, store: store}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.fromStore)
}

func (h *ReportHandler) create(c *gin.Context) {
	list, err := repository.DecodeTickets(c.Request.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	r, err := h.service.Build(c.Request.Context(), list)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReportResponse(r))
}

func (h *ReportHandler) fromStore(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ticket store is not configured"})
		return
	}

	r, err := h.service.BuildFrom(c.Request.Context(), h.store)
	if err != nil {
		// Bad rows in the store are a server fault, not a bad request.
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReportResponse(r))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoTickets):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toReportResponse(r *domain.Report) reportResponse {
	carriers := make([]carrierResponse, 0, len(r.MinFlightTimes))
	for _, cd := range r.MinFlightTimes {
		hours, minutes := report.SplitDuration(cd.Duration)
		carriers = append(carriers, carrierResponse{
			Carrier:         cd.Carrier,
			Hours:           hours,
			Minutes:         minutes,
			DurationMinutes: int64(cd.Duration / time.Minute),
		})
	}
	return reportResponse{
		ID:             r.ID,
		Origin:         r.Route.Origin,
		Destination:    r.Route.Destination,
		TicketCount:    r.TicketCount,
		MinFlightTimes: carriers,
		MeanPrice:      round2(r.Prices.Mean),
		MedianPrice:    round2(r.Prices.Median),
		Difference:     round2(r.Prices.Difference),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
