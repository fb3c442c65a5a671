package models

// Room and reservation statuses share one vocabulary: a room mirrors the
// status of the reservation currently claiming it.
const (
	StatusAvailable   = "available"
	StatusReserved    = "reserved"
	StatusConfirmed   = "confirmed"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusCancelled   = "cancelled"
)

// Sub-statuses for check-in, check-out and payment tracking. They are stored
// independently of the reservation status; readers must tolerate combinations
// like checkInStatus=done with status=reserved.
const (
	SubStatusPending   = "pending"
	SubStatusDone      = "done"
	SubStatusCancelled = "cancelled"

	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentCancelled = "cancelled"
)

// Maintenance ticket statuses.
const (
	MaintenanceOpen       = "open"
	MaintenanceInProgress = "in_progress"
	MaintenanceDone       = "done"
)
