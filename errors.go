package housekeeping

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrStaffNotFound = errors.New("staff not found")
	ErrInvalidRoom   = errors.New("invalid room number")

	// ErrInvalidTransition is the kind wrapped by every TransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionError reports a rejected status edge on a task or staff record.
// The record is left untouched when one of these is returned.
type TransitionError struct {
	ID   string
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s for %s", e.From, e.To, e.ID)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
