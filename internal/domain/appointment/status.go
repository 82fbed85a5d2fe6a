package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel reports whether an appointment in the current status may be
// cancelled. Only upcoming appointments can.
func CanCancel(current Status) error {
	if current != StatusUpcoming {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusUpcoming
}

// IsPast reports whether the status belongs to the history tab.
func IsPast(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}
