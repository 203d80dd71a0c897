package tickets

import (
	"fmt"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
)

const (
	// dd.MM.yy H:mm
	dateTimeLayout = "02.01.06 15:04"
	// H:mm
	timeOfDayLayout = "15:04"
)

// FlightTimer computes how long the flight of one ticket takes.
type FlightTimer interface {
	FlightDuration(t domain.Ticket) (time.Duration, error)
}

// DateTimeTimer handles tickets carrying both dates. The duration may span
// several days.
type DateTimeTimer struct{}

func (DateTimeTimer) FlightDuration(t domain.Ticket) (time.Duration, error) {
	departure, err := parseTime(dateTimeLayout, t.DepartureDate+" "+t.DepartureTime)
	if err != nil {
		return 0, err
	}
	arrival, err := parseTime(dateTimeLayout, t.ArrivalDate+" "+t.ArrivalTime)
	if err != nil {
		return 0, err
	}
	return arrival.Sub(departure), nil
}

// TimeOfDayTimer handles tickets without dates. An arrival earlier in the day
// than the departure is taken as the next day.
type TimeOfDayTimer struct{}

func (TimeOfDayTimer) FlightDuration(t domain.Ticket) (time.Duration, error) {
	departure, err := parseTime(timeOfDayLayout, t.DepartureTime)
	if err != nil {
		return 0, err
	}
	arrival, err := parseTime(timeOfDayLayout, t.ArrivalTime)
	if err != nil {
		return 0, err
	}

	d := arrival.Sub(departure)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d, nil
}

// TimerFor picks the strategy matching the fields present on t.
func TimerFor(t domain.Ticket) (FlightTimer, error) {
	switch {
	case t.HasDates():
		return DateTimeTimer{}, nil
	case t.DepartureDate == "" && t.ArrivalDate == "":
		return TimeOfDayTimer{}, nil
	default:
		return nil, fmt.Errorf("%w: carrier %s: departure and arrival dates must be set together", domain.ErrInvalidInput, t.Carrier)
	}
}

// FlightDuration is TimerFor followed by the chosen strategy.
func FlightDuration(t domain.Ticket) (time.Duration, error) {
	timer, err := TimerFor(t)
	if err != nil {
		return 0, err
	}
	return timer.FlightDuration(t)
}

func parseTime(layout, value string) (time.Time, error) {
	ts, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parse time %q: %v", domain.ErrInvalidInput, value, err)
	}
	return ts, nil
}
