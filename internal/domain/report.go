package domain

import "time"

type CarrierDuration struct {
	Carrier  string        `json:"carrier"`
	Duration time.Duration `json:"duration"`
}

type PriceStats struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Difference float64 `json:"difference"`
}

type Report struct {
	ID             string            `json:"id"`
	Route          Route             `json:"route"`
	MinFlightTimes []CarrierDuration `json:"min_flight_times"`
	Prices         PriceStats        `json:"prices"`
	TicketCount    int               `json:"ticket_count"`
	CreatedAt      time.Time         `json:"created_at"`
}
