package services

import (
	"errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pousada-backend/models"
	"pousada-backend/utils"
)

// StatusRefresher re-derives reservation and room statuses as dates pass: a
// stay that was "reserved" yesterday becomes "confirmed" on arrival day and
// "occupied" after it without anyone touching the reservation.
type StatusRefresher struct {
	reservations ReservationStore
	directory    *RoomService
	logger       *zap.Logger
}

func NewStatusRefresher(reservations ReservationStore, directory *RoomService, logger *zap.Logger) *StatusRefresher {
	return &StatusRefresher{reservations: reservations, directory: directory, logger: logger}
}

// Schedule registers the nightly run. The hour is early morning so the new
// day's statuses are in place before the front desk opens.
func (s *StatusRefresher) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("0 5 * * *", func() {
		if _, err := s.Run(); err != nil {
			s.logger.Error("status refresh failed", zap.Error(err))
		}
	})
	return err
}

// Run walks every live reservation and applies the canonical status rule.
// Cancelled stays are terminal, checked-out stays are over, and a confirmed
// check-in pins the room to occupied, so all three are left alone.
func (s *StatusRefresher) Run() (int, error) {
	all, err := s.reservations.List()
	if err != nil {
		return 0, err
	}

	changed := 0
	skipped := 0
	for _, res := range all {
		if res.IsCancelled() ||
			res.CheckOutStatus == models.SubStatusDone ||
			res.CheckInStatus == models.SubStatusDone {
			continue
		}

		in, out, ok := stayDatesLenient(res)
		if !ok {
			skipped++
			continue
		}

		derived := DeriveStatus(utils.Today(), in, out)
		if derived == res.Status {
			continue
		}

		if err := s.reservations.Updates(res.ID, map[string]interface{}{"status": derived}); err != nil {
			return changed, err
		}
		if res.RoomID != nil {
			if err := s.directory.SetStatus(*res.RoomID, derived, res.OccupantLabel(), res.Notes); err != nil && !errors.Is(err, ErrNotFound) {
				return changed, err
			}
		}
		changed++
	}

	s.logger.Info("status refresh finished",
		zap.Int("changed", changed), zap.Int("skipped", skipped))
	return changed, nil
}
