package doctorsched

import "errors"

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrSessionNotFound  = errors.New("schedule session not found")
	ErrOverrideNotFound = errors.New("day override not found")
	ErrInvalidSession   = errors.New("session times are invalid")
	ErrInvalidInterval  = errors.New("interval end must be after start")
)
