package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// QueueMetrics holds the instruments recorded by the queue engine.
type QueueMetrics struct {
	BookingsTotal     metric.Int64Counter
	SlotConflicts     metric.Int64Counter
	RetriesExhausted  metric.Int64Counter
	ReservationsSwept metric.Int64Counter
	StatusTransitions metric.Int64Counter
	DoctorDelay       metric.Int64Gauge
}

// NewQueueMetrics registers the queue engine instruments on the global meter.
// Instrument creation errors are ignored; a nil instrument is never returned
// by the otel SDK, failed instruments become no-ops.
func NewQueueMetrics() *QueueMetrics {
	meter := otel.Meter(tracerName)

	bookings, _ := meter.Int64Counter(
		"queue_bookings_total",
		metric.WithDescription("Appointments booked, by kind and outcome"),
		metric.WithUnit("{booking}"),
	)
	conflicts, _ := meter.Int64Counter(
		"queue_slot_conflicts_total",
		metric.WithDescription("Reservation attempts lost to a concurrent booker"),
		metric.WithUnit("{conflict}"),
	)
	exhausted, _ := meter.Int64Counter(
		"queue_booking_retries_exhausted_total",
		metric.WithDescription("Booking requests that failed after all retry attempts"),
		metric.WithUnit("{request}"),
	)
	swept, _ := meter.Int64Counter(
		"queue_reservations_reaped_total",
		metric.WithDescription("Expired held reservations deleted by the reaper"),
		metric.WithUnit("{reservation}"),
	)
	transitions, _ := meter.Int64Counter(
		"queue_status_transitions_total",
		metric.WithDescription("Appointment status transitions, by from/to pair"),
		metric.WithUnit("{transition}"),
	)
	delay, _ := meter.Int64Gauge(
		"queue_doctor_delay_minutes",
		metric.WithDescription("Current computed doctor delay"),
		metric.WithUnit("min"),
	)

	return &QueueMetrics{
		BookingsTotal:     bookings,
		SlotConflicts:     conflicts,
		RetriesExhausted:  exhausted,
		ReservationsSwept: swept,
		StatusTransitions: transitions,
		DoctorDelay:       delay,
	}
}
