package appointment

// ===============================
// Appointment Status
// ===============================

// Status is free text on the stored row; these are the values the
// service itself writes.
type Status string

const (
	StatusRequested Status = "requested"
	StatusBooked    Status = "booked"
)

// InitialStatus is the status every accepted booking is persisted with.
func InitialStatus() Status {
	return StatusBooked
}
