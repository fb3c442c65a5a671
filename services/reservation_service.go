package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pousada-backend/models"
	"pousada-backend/utils"
)

// Occupant identifies who a stay belongs to: a guest or a company, never
// both.
type Occupant struct {
	GuestID   *uint
	CompanyID *uint
	Name      string
}

// StayRequest carries the booking fields shared by guest and company flows.
type StayRequest struct {
	RoomRef    string // numeric id, code ("RM-105") or display number
	RoomNumber string // explicit display number, wins over lookup
	CheckIn    string
	CheckOut   string
	Guests     int
	Value      float64
	Notes      string
}

// ReservationView is the flattened row the listing endpoints return.
type ReservationView struct {
	ID             uint    `json:"id"`
	GuestOrCompany string  `json:"guestOrCompany"`
	Room           string  `json:"room"`
	GuestsCount    int     `json:"guestsCount"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	Status         string  `json:"reservationStatus"`
	CheckInStatus  string  `json:"checkInStatus"`
	CheckOutStatus string  `json:"checkOutStatus"`
	PaymentStatus  string  `json:"paymentStatus"`
	PaymentMethod  string  `json:"paymentMethod"`
	Total          float64 `json:"total"`
}

// ReservationService is the reservation lifecycle manager. Every mutation of
// a reservation, and every room-status side effect those mutations imply,
// goes through here.
type ReservationService struct {
	reservations ReservationStore
	rooms        RoomStore
	directory    *RoomService
	logger       *zap.Logger
}

func NewReservationService(reservations ReservationStore, rooms RoomStore, directory *RoomService, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		directory:    directory,
		logger:       logger,
	}
}

// resolveRoomNumber picks the best display number available: the explicit
// one, then the directory's, then whatever digits the free-text ref carries.
func (s *ReservationService) resolveRoomNumber(explicit, roomRef string) string {
	if n := strings.TrimSpace(explicit); n != "" {
		return n
	}
	if roomRef != "" {
		if room, err := s.rooms.FindByRef(roomRef); err == nil && room.RoomNumber != "" {
			return room.RoomNumber
		}
	}
	return utils.DigitsOnly(roomRef)
}

// CreateForOccupant validates the stay, derives its status, writes the
// reservation and issues the room directory update. It returns the created
// record.
func (s *ReservationService) CreateForOccupant(occ Occupant, stay StayRequest) (*models.Reservation, error) {
	if strings.TrimSpace(occ.Name) == "" {
		return nil, fmt.Errorf("%w: occupant name is required", ErrInvalidInput)
	}
	if (occ.GuestID == nil) == (occ.CompanyID == nil) {
		return nil, fmt.Errorf("%w: exactly one of guest or company must own the stay", ErrInvalidInput)
	}
	if strings.TrimSpace(stay.RoomRef) == "" {
		return nil, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	checkIn, checkOut, err := ParseStayDates(stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, err
	}
	status := DeriveStatus(utils.Today(), checkIn, checkOut)

	guests := stay.Guests
	if guests <= 0 {
		guests = 1
	}

	res := &models.Reservation{
		ReferenceCode:  uuid.NewString(),
		GuestID:        occ.GuestID,
		CompanyID:      occ.CompanyID,
		RoomCode:       stay.RoomRef,
		RoomNumber:     s.resolveRoomNumber(stay.RoomNumber, stay.RoomRef),
		CheckIn:        stay.CheckIn,
		CheckOut:       stay.CheckOut,
		Guests:         guests,
		Value:          stay.Value,
		Status:         status,
		CheckInStatus:  models.SubStatusPending,
		CheckOutStatus: models.SubStatusPending,
		PaymentStatus:  models.PaymentPending,
		Notes:          stay.Notes,
	}
	if occ.GuestID != nil {
		res.GuestName = occ.Name
	} else {
		res.CompanyName = occ.Name
	}

	if room, lookupErr := s.rooms.FindByRef(stay.RoomRef); lookupErr == nil {
		res.RoomID = &room.ID
		res.RoomCode = room.RoomCode
		if res.RoomCode == "" {
			res.RoomCode = stay.RoomRef
		}
	}

	if err := s.reservations.Create(res); err != nil {
		return nil, err
	}

	if res.RoomID != nil {
		if err := s.directory.SetStatus(*res.RoomID, status, occ.Name, stay.Notes); err != nil {
			s.logger.Warn("room update after reservation create failed",
				zap.Uint("reservationId", res.ID), zap.Error(err))
		}
	} else {
		s.logger.Warn("reservation references a room the directory does not know",
			zap.Uint("reservationId", res.ID), zap.String("roomRef", stay.RoomRef))
	}

	s.logger.Info("reservation created",
		zap.Uint("id", res.ID),
		zap.String("occupant", occ.Name),
		zap.String("room", res.RoomNumber),
		zap.String("status", status),
	)
	return res, nil
}

// Supersede books a new stay for an existing occupant. The previous
// reservation record is kept untouched as history; only the old room is
// released, and only when the occupant actually moved.
func (s *ReservationService) Supersede(occ Occupant, oldRoomRef string, stay StayRequest) (*models.Reservation, error) {
	if oldRoomRef != "" && oldRoomRef != stay.RoomRef {
		if err := s.directory.SetStatusByRef(oldRoomRef, models.StatusAvailable, "", ""); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return s.CreateForOccupant(occ, stay)
}

// SyncLatest mirrors updated occupant data onto the occupant's newest
// reservation. Older reservations are history and stay untouched.
func (s *ReservationService) SyncLatest(occ Occupant, stay StayRequest, status string) error {
	var (
		latest *models.Reservation
		err    error
	)
	switch {
	case occ.GuestID != nil:
		latest, err = s.reservations.LatestByGuest(*occ.GuestID)
	case occ.CompanyID != nil:
		latest, err = s.reservations.LatestByCompany(*occ.CompanyID)
	default:
		return fmt.Errorf("%w: occupant without id", ErrInvalidInput)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // nothing to sync yet
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"room_code":   stay.RoomRef,
		"room_number": s.resolveRoomNumber(stay.RoomNumber, stay.RoomRef),
		"check_in":    stay.CheckIn,
		"check_out":   stay.CheckOut,
		"guests":      stay.Guests,
		"value":       stay.Value,
		"notes":       stay.Notes,
		"status":      status,
	}
	if occ.GuestID != nil {
		fields["guest_name"] = occ.Name
	} else {
		fields["company_name"] = occ.Name
	}
	if room, lookupErr := s.rooms.FindByRef(stay.RoomRef); lookupErr == nil {
		fields["room_id"] = room.ID
	}
	return s.reservations.Updates(latest.ID, fields)
}

func (s *ReservationService) get(id uint) (*models.Reservation, error) {
	res, err := s.reservations.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
	}
	return res, err
}

// ConfirmCheckIn marks the arrival as done and forces the room to occupied.
// An explicit check-in always wins over whatever the dates would derive.
func (s *ReservationService) ConfirmCheckIn(id uint) error {
	res, err := s.get(id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{"check_in_status": models.SubStatusDone}
	if res.RoomNumber == "" {
		if number := s.resolveRoomNumber("", res.RoomCode); number != "" {
			fields["room_number"] = number
		}
	}
	if err := s.reservations.Updates(res.ID, fields); err != nil {
		return err
	}

	if res.RoomID != nil {
		if err := s.directory.SetStatus(*res.RoomID, models.StatusOccupied, res.OccupantLabel(), res.Notes); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	s.logger.Info("check-in confirmed", zap.Uint("reservationId", res.ID))
	return nil
}

// ConfirmCheckOut marks the departure as done, records when it actually
// happened and releases the room.
func (s *ReservationService) ConfirmCheckOut(id uint) error {
	res, err := s.get(id)
	if err != nil {
		return err
	}

	now := time.Now()
	fields := map[string]interface{}{
		"check_out_status": models.SubStatusDone,
		"actual_check_out": now,
	}
	if res.RoomNumber == "" {
		if number := s.resolveRoomNumber("", res.RoomCode); number != "" {
			fields["room_number"] = number
		}
	}
	if err := s.reservations.Updates(res.ID, fields); err != nil {
		return err
	}

	if res.RoomID != nil {
		if err := s.directory.SetStatus(*res.RoomID, models.StatusAvailable, "", ""); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	s.logger.Info("check-out confirmed", zap.Uint("reservationId", res.ID))
	return nil
}

// RegisterPayment confirms a payment. It touches no room state.
func (s *ReservationService) RegisterPayment(id uint, method string, amount *float64) error {
	if strings.TrimSpace(method) == "" || amount == nil {
		return fmt.Errorf("%w: payment method and amount are required", ErrInvalidInput)
	}
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.reservations.Updates(id, map[string]interface{}{
		"payment_status": models.PaymentConfirmed,
		"payment_method": method,
		"value":          *amount,
	})
}

// Cancel moves the reservation to its terminal state. A cancelled reservation
// keeps no value, no payment method and no room claim.
func (s *ReservationService) Cancel(id uint) error {
	res, err := s.get(id)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.reservations.Updates(res.ID, map[string]interface{}{
		"status":           models.StatusCancelled,
		"check_in_status":  models.SubStatusCancelled,
		"check_out_status": models.SubStatusCancelled,
		"payment_status":   models.PaymentCancelled,
		"payment_method":   nil,
		"value":            0,
		"canceled_at":      now,
	}); err != nil {
		return err
	}

	if res.RoomID != nil {
		if err := s.directory.SetStatus(*res.RoomID, models.StatusAvailable, "", ""); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	s.logger.Info("reservation cancelled", zap.Uint("reservationId", res.ID))
	return nil
}

// DeleteForOccupant removes every reservation owned by a guest or company.
// This is the hard-delete half of the history policy: supersede retains,
// occupant deletion cascades.
func (s *ReservationService) DeleteForOccupant(occ Occupant) error {
	switch {
	case occ.GuestID != nil:
		return s.reservations.DeleteByGuest(*occ.GuestID)
	case occ.CompanyID != nil:
		return s.reservations.DeleteByCompany(*occ.CompanyID)
	default:
		return fmt.Errorf("%w: occupant without id", ErrInvalidInput)
	}
}

// List returns the flattened reservation rows. A reservation still carrying
// the room-level "reserved" label is shown as confirmed, and missing
// sub-statuses read as pending.
func (s *ReservationService) List() ([]ReservationView, error) {
	all, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	views := make([]ReservationView, 0, len(all))
	for _, res := range all {
		status := res.Status
		if status == "" || status == models.StatusReserved {
			status = models.StatusConfirmed
		}

		room := res.RoomNumber
		if room == "" {
			room = s.resolveRoomNumber("", res.RoomCode)
		}
		if room == "" {
			room = "—"
		}

		method := "—"
		if res.PaymentMethod != nil && *res.PaymentMethod != "" {
			method = *res.PaymentMethod
		}

		views = append(views, ReservationView{
			ID:             res.ID,
			GuestOrCompany: res.OccupantLabel(),
			Room:           room,
			GuestsCount:    res.Guests,
			CheckIn:        orDash(res.CheckIn),
			CheckOut:       orDash(res.CheckOut),
			Status:         status,
			CheckInStatus:  orDefault(res.CheckInStatus, models.SubStatusPending),
			CheckOutStatus: orDefault(res.CheckOutStatus, models.SubStatusPending),
			PaymentStatus:  orDefault(res.PaymentStatus, models.PaymentPending),
			PaymentMethod:  method,
			Total:          res.Value,
		})
	}
	return views, nil
}

// BackfillRoomNumbers fills the cached display number on reservations that
// miss one. It only ever touches rows without a number, so reruns are
// idempotent; writes go out in chunks of 400.
func (s *ReservationService) BackfillRoomNumbers() (int, error) {
	all, err := s.reservations.List()
	if err != nil {
		return 0, err
	}

	updates := make(map[uint]string)
	for _, res := range all {
		if res.RoomNumber != "" {
			continue
		}
		number := s.resolveRoomNumber("", res.RoomCode)
		if number == "" && res.RoomID != nil {
			if room, lookupErr := s.rooms.FindByID(*res.RoomID); lookupErr == nil {
				number = room.RoomNumber
			}
		}
		if number != "" {
			updates[res.ID] = number
		}
	}

	if len(updates) == 0 {
		return 0, nil
	}
	updated, err := s.reservations.BulkSetRoomNumbers(updates, 400)
	if err == nil {
		s.logger.Info("room number backfill finished", zap.Int("updated", updated))
	}
	return updated, err
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
