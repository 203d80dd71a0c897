package tickets

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
)

// MinFlightTimes returns the shortest flight of every carrier, sorted by
// carrier name.
func MinFlightTimes(tickets []domain.Ticket) ([]domain.CarrierDuration, error) {
	best := make(map[string]time.Duration)
	for _, t := range tickets {
		d, err := FlightDuration(t)
		if err != nil {
			return nil, fmt.Errorf("flight duration: %w", err)
		}
		if cur, ok := best[t.Carrier]; !ok || d < cur {
			best[t.Carrier] = d
		}
	}

	result := make([]domain.CarrierDuration, 0, len(best))
	for carrier, d := range best {
		result = append(result, domain.CarrierDuration{Carrier: carrier, Duration: d})
	}
	slices.SortFunc(result, func(a, b domain.CarrierDuration) int {
		return strings.Compare(a.Carrier, b.Carrier)
	})
	return result, nil
}

func PriceDifference(tickets []domain.Ticket) domain.PriceStats {
	prices := make([]float64, 0, len(tickets))
	for _, t := range tickets {
		prices = append(prices, t.Price)
	}

	mean := Mean(prices)
	median := Median(prices)
	return domain.PriceStats{
		Mean:       mean,
		Median:     median,
		Difference: mean - median,
	}
}

func Mean(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	var sum float64
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}

// Median sorts a copy of prices; the argument is left untouched.
func Median(prices []float64) float64 {
	n := len(prices)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(prices)
	slices.Sort(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
