package tickets

import "github.com/Domenick1991/ticketreport/internal/domain"

// FilterByRoute returns the tickets flying route, in input order. The input
// slice is not modified.
func FilterByRoute(tickets []domain.Ticket, route domain.Route) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if route.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
