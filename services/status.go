package services

import (
	"fmt"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"
)

// DeriveStatus maps today's date against a stay interval to a status label.
// This is the canonical rule for every write path and the nightly refresh:
//
//	today < checkIn             -> reserved
//	today == checkIn            -> confirmed (same-day arrival wins over occupied)
//	checkIn < today <= checkOut -> occupied
//	today > checkOut            -> available
//
// Callers must pass an ordered pair; ParseStayDates enforces that.
func DeriveStatus(today, checkIn, checkOut time.Time) string {
	today = utils.Day(today)
	checkIn = utils.Day(checkIn)
	checkOut = utils.Day(checkOut)

	switch {
	case today.Before(checkIn):
		return models.StatusReserved
	case today.Equal(checkIn):
		return models.StatusConfirmed
	case !today.After(checkOut):
		return models.StatusOccupied
	default:
		return models.StatusAvailable
	}
}

// ParseStayDates validates a check-in/check-out pair. It fails with
// ErrInvalidDate when either string is unparseable or the range is inverted.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-in %q", ErrInvalidDate, checkIn)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-out %q", ErrInvalidDate, checkOut)
	}
	if out.Before(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-out %s before check-in %s", ErrInvalidDate, checkOut, checkIn)
	}
	return in, out, nil
}
