// Package metrics holds the Prometheus instruments for the domain operations.
// Counters are incremented by the handlers on successful writes; the /metrics
// endpoint is wired in the api binary.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoomBookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostel_room_bookings_total",
		Help: "Number of successful room bookings.",
	})

	ComplaintsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostel_complaints_filed_total",
		Help: "Number of maintenance complaints filed.",
	})

	BillsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostel_bills_issued_total",
		Help: "Number of bills issued or re-issued.",
	})
)
