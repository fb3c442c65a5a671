package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pousada-backend/models"
	"pousada-backend/utils"
)

// GuestInput is the payload for creating or updating a guest together with
// their stay.
type GuestInput struct {
	FullName string `json:"fullName"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	RoomRef  string      `json:"roomId"`
	CheckIn  string      `json:"checkIn"`
	CheckOut string      `json:"checkOut"`
	Guests   int         `json:"guests"`
	Value    interface{} `json:"value"` // number or comma-decimal string
	Notes    string      `json:"notes"`
}

func (in GuestInput) stay() StayRequest {
	return StayRequest{
		RoomRef:  in.RoomRef,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   in.Guests,
		Value:    utils.ParseAmount(in.Value),
		Notes:    in.Notes,
	}
}

type GuestService struct {
	guests       GuestStore
	reservations *ReservationService
	directory    *RoomService
	logger       *zap.Logger
}

func NewGuestService(guests GuestStore, reservations *ReservationService, directory *RoomService, logger *zap.Logger) *GuestService {
	return &GuestService{guests: guests, reservations: reservations, directory: directory, logger: logger}
}

func (s *GuestService) List() ([]models.Guest, error) {
	return s.guests.List()
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	guest, err := s.guests.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: guest %d", ErrNotFound, id)
	}
	return guest, err
}

func (s *GuestService) validate(in GuestInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.RoomRef) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	_, _, err := ParseStayDates(in.CheckIn, in.CheckOut)
	return err
}

// Create registers the guest and books their stay in one step: one guest row,
// one reservation, one room status update.
func (s *GuestService) Create(in GuestInput) (*models.Guest, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	stay := in.stay()
	guest := &models.Guest{
		FullName:   in.FullName,
		CPF:        in.CPF,
		Phone:      in.Phone,
		Email:      in.Email,
		RoomCode:   in.RoomRef,
		RoomNumber: s.reservations.resolveRoomNumber("", in.RoomRef),
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     stay.Guests,
		Value:      stay.Value,
		Notes:      in.Notes,
	}
	if guest.Guests <= 0 {
		guest.Guests = 1
	}
	if err := s.guests.Create(guest); err != nil {
		return nil, err
	}

	occ := Occupant{GuestID: &guest.ID, Name: guest.FullName}
	if _, err := s.reservations.CreateForOccupant(occ, stay); err != nil {
		return nil, err
	}

	s.logger.Info("guest created", zap.Uint("id", guest.ID), zap.String("name", guest.FullName))
	return guest, nil
}

// Update edits the guest record, moves their room claim when the room
// changed, re-derives the stay status and syncs the newest reservation.
func (s *GuestService) Update(id uint, in GuestInput) error {
	guest, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.validate(in); err != nil {
		return err
	}

	checkIn, checkOut, err := ParseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return err
	}
	status := DeriveStatus(utils.Today(), checkIn, checkOut)
	stay := in.stay()

	oldRoom := guest.RoomCode
	if err := s.guests.Updates(guest.ID, map[string]interface{}{
		"full_name":   in.FullName,
		"cpf":         in.CPF,
		"phone":       in.Phone,
		"email":       in.Email,
		"room_code":   in.RoomRef,
		"room_number": s.reservations.resolveRoomNumber("", in.RoomRef),
		"check_in":    in.CheckIn,
		"check_out":   in.CheckOut,
		"guests":      stay.Guests,
		"value":       stay.Value,
		"notes":       in.Notes,
	}); err != nil {
		return err
	}

	if oldRoom != "" && oldRoom != in.RoomRef {
		if err := s.directory.SetStatusByRef(oldRoom, models.StatusAvailable, "", ""); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if err := s.directory.SetStatusByRef(in.RoomRef, status, in.FullName, in.Notes); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	occ := Occupant{GuestID: &guest.ID, Name: in.FullName}
	return s.reservations.SyncLatest(occ, stay, status)
}

// NewReservation supersedes the guest's current stay: the previous
// reservation is kept as history, the old room is released when the guest
// moved, and the guest's denormalized stay fields follow the new booking.
func (s *GuestService) NewReservation(id uint, in GuestInput) (*models.Reservation, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	occ := Occupant{GuestID: &guest.ID, Name: in.FullName}
	res, err := s.reservations.Supersede(occ, guest.RoomCode, in.stay())
	if err != nil {
		return nil, err
	}

	err = s.guests.Updates(guest.ID, map[string]interface{}{
		"full_name":   in.FullName,
		"cpf":         in.CPF,
		"phone":       in.Phone,
		"email":       in.Email,
		"room_code":   in.RoomRef,
		"room_number": res.RoomNumber,
		"check_in":    in.CheckIn,
		"check_out":   in.CheckOut,
		"guests":      res.Guests,
		"value":       res.Value,
		"notes":       in.Notes,
	})
	return res, err
}

// Delete removes the guest and cascades to every reservation they ever had.
// The full history is lost; this is the documented counterpart of
// NewReservation's retention.
func (s *GuestService) Delete(id uint) error {
	guest, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.guests.Delete(guest.ID); err != nil {
		return err
	}
	occ := Occupant{GuestID: &guest.ID, Name: guest.FullName}
	if err := s.reservations.DeleteForOccupant(occ); err != nil {
		return err
	}
	s.logger.Info("guest deleted with reservations", zap.Uint("id", guest.ID))
	return nil
}
