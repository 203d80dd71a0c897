// Package report renders reports as the console text of the CLI.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/Domenick1991/ticketreport/internal/domain"
)

const (
	minFlightTimeHeader = "Минимальное время полета %s для каждого авиаперевозчика:\n"
	carrierLine         = "- %s: %d ч %d мин\n"
	priceHeader         = "\nРазница между средней ценой и медианой для полета %s:\n"
	meanLine            = "Средняя цена: %.2f\n"
	medianLine          = "Медианная цена: %.2f\n"
	differenceLine      = "Разница: %.2f\n"
	notFoundLine        = "Билеты по маршруту %s не найдены.\n"

	UsageLine        = "Пожалуйста, укажите путь к файлу tickets.json\n"
	FileNotFoundLine = "Файл не найден: %s\n"
)

func Write(w io.Writer, r *domain.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, minFlightTimeHeader, r.Route.Between)
	for _, c := range r.MinFlightTimes {
		hours, minutes := SplitDuration(c.Duration)
		fmt.Fprintf(bw, carrierLine, c.Carrier, hours, minutes)
	}

	fmt.Fprintf(bw, priceHeader, r.Route.Between)
	fmt.Fprintf(bw, meanLine, r.Prices.Mean)
	fmt.Fprintf(bw, medianLine, r.Prices.Median)
	fmt.Fprintf(bw, differenceLine, r.Prices.Difference)

	return bw.Flush()
}

func WriteNotFound(w io.Writer, route domain.Route) error {
	_, err := fmt.Fprintf(w, notFoundLine, route.Title)
	return err
}

// SplitDuration returns whole hours and the remaining minutes.
func SplitDuration(d time.Duration) (hours, minutes int64) {
	return int64(d / time.Hour), int64((d % time.Hour) / time.Minute)
}
