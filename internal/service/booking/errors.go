package booking

import "errors"

var (
	// ErrSlotOccupied: another booker holds a live reservation or
	// appointment for the chosen slot. Recoverable, retry with auto-select.
	ErrSlotOccupied = errors.New("slot is occupied")

	// ErrSlotAlreadyBooked: an appointment appeared between reserve and
	// commit. Treated the same as occupied by callers.
	ErrSlotAlreadyBooked = errors.New("slot was booked by another request")

	// ErrReservationMismatch: the reservation is gone, expired, or does not
	// match the expected slot. Recoverable, retry with auto-select.
	ErrReservationMismatch = errors.New("reservation mismatch")

	// ErrAdvanceCapacityReached: no advance slot exists for the day.
	// Terminal; the caller picks another day or force-books.
	ErrAdvanceCapacityReached = errors.New("advance booking capacity reached")

	// ErrNoSlotFree: every remaining eligible slot is taken.
	ErrNoSlotFree = errors.New("no free slot available")

	// ErrRetryExhausted: the bounded retry loop lost every attempt.
	ErrRetryExhausted = errors.New("booking retries exhausted, please try again")
)
