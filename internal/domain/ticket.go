package domain

// Ticket is one record of the tickets document. Dates are empty for the
// time-only schema.
type Ticket struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Carrier       string  `json:"carrier"`
	DepartureDate string  `json:"departure_date,omitempty"`
	DepartureTime string  `json:"departure_time"`
	ArrivalDate   string  `json:"arrival_date,omitempty"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
}

func (t Ticket) HasDates() bool {
	return t.DepartureDate != "" && t.ArrivalDate != ""
}

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Between     string `json:"between,omitempty"`
	Title       string `json:"title,omitempty"`
}

func (r Route) Matches(t Ticket) bool {
	return t.Origin == r.Origin && t.Destination == r.Destination
}
