package availability

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrNoAvailability = errors.New("doctor has no availability on this day")
)
