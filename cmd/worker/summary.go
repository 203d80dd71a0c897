package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/ticketreport/internal/kafka"
	"github.com/Domenick1991/ticketreport/internal/report"
)

func summary(event kafka.ReportEvent) string {
	carriers := make([]string, 0, len(event.Carriers))
	for _, c := range event.Carriers {
		hours, minutes := report.SplitDuration(time.Duration(c.Minutes) * time.Minute)
		carriers = append(carriers, fmt.Sprintf("%s=%dh%02dm", c.Carrier, hours, minutes))
	}
	return fmt.Sprintf("report %s %s->%s tickets=%d min=[%s] mean=%.2f median=%.2f diff=%.2f",
		event.ID, event.Origin, event.Destination, event.TicketCount,
		strings.Join(carriers, " "), event.MeanPrice, event.MedianPrice, event.Difference)
}
