package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation is the stay record. Exactly one of GuestID/CompanyID is set;
// the cached name of whichever it is feeds the "guestOrCompany" display label.
//
// CheckIn/CheckOut are kept as plain strings on purpose: the data this system
// inherited is schema-less and historical rows carry dates in more than one
// format. Write paths validate them; aggregate reads parse leniently and skip
// (but count) what they cannot read.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"referenceCode,omitempty"`

	GuestID     *uint  `gorm:"column:guest_id;index" json:"guestId,omitempty"`
	GuestName   string `gorm:"column:guest_name;size:255" json:"guestName,omitempty"`
	CompanyID   *uint  `gorm:"column:company_id;index" json:"companyId,omitempty"`
	CompanyName string `gorm:"column:company_name;size:255" json:"companyName,omitempty"`

	RoomID     *uint  `gorm:"column:room_id;index" json:"roomId,omitempty"`
	RoomCode   string `gorm:"column:room_code;size:50" json:"roomCode,omitempty"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"roomNumber,omitempty"`

	CheckIn  string `gorm:"column:check_in;size:32" json:"checkIn"`
	CheckOut string `gorm:"column:check_out;size:32" json:"checkOut"`

	Guests int     `gorm:"column:guests;default:1" json:"guests"`
	Value  float64 `gorm:"column:value" json:"value"`

	Status         string  `gorm:"column:status;size:32" json:"status"`
	CheckInStatus  string  `gorm:"column:check_in_status;size:32" json:"checkInStatus"`
	CheckOutStatus string  `gorm:"column:check_out_status;size:32" json:"checkOutStatus"`
	PaymentStatus  string  `gorm:"column:payment_status;size:32" json:"paymentStatus"`
	PaymentMethod  *string `gorm:"column:payment_method;size:64" json:"paymentMethod"`

	Notes string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	ActualCheckOut *time.Time `gorm:"column:actual_check_out" json:"actualCheckOut,omitempty"`
	CanceledAt     *time.Time `gorm:"column:canceled_at" json:"canceledAt,omitempty"`
}

// OccupantLabel resolves the display name: guest first, then company.
func (r Reservation) OccupantLabel() string {
	if r.GuestName != "" {
		return r.GuestName
	}
	if r.CompanyName != "" {
		return r.CompanyName
	}
	return "—"
}

// IsCancelled reports whether the reservation reached its terminal state.
func (r Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}
