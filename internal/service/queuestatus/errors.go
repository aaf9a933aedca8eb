package queuestatus

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrCutoffPassed      = errors.New("confirmation window has closed")
	ErrRejoinConflict    = errors.New("rejoin target slot is occupied")
)
