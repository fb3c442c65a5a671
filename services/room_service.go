package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pousada-backend/models"
)

// RoomService is the room directory: it owns the current status and occupant
// annotation of every room. Status is mutated through SetStatus only, which
// the reservation lifecycle and the maintenance workflow call.
type RoomService struct {
	rooms        RoomStore
	reservations ReservationStore
	logger       *zap.Logger
}

func NewRoomService(rooms RoomStore, reservations ReservationStore, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, reservations: reservations, logger: logger}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if room.Status == "" {
		room.Status = models.StatusAvailable
	}
	return s.rooms.Create(room)
}

func (s *RoomService) List() ([]models.Room, error) {
	return s.rooms.List()
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	return room, err
}

func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	// Identity and bookkeeping columns are not writable through the API.
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.rooms.Updates(id, fields)
}

// Delete removes a room. A room still claimed by an active reservation
// cannot be deleted; the claim has to be checked out or cancelled first.
func (s *RoomService) Delete(id uint) error {
	active, err := s.reservations.ListActiveByRoom(id)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return fmt.Errorf("%w: room %d has %d active reservation(s)", ErrInvalidInput, id, len(active))
	}

	err = s.rooms.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	return err
}

// SetStatus updates a room's status and occupant annotation as one overwrite.
// An available room never carries an occupant: when status is "available" the
// name and notes are cleared no matter what the caller passed. For any other
// status both fields take the caller's values, empty string included.
func (s *RoomService) SetStatus(roomID uint, status, occupantName, notes string) error {
	room, err := s.rooms.FindByID(roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{"status": status}
	if status == models.StatusAvailable {
		fields["guest"] = nil
		fields["guest_notes"] = nil
	} else {
		fields["guest"] = occupantName
		fields["guest_notes"] = notes
	}

	if err := s.rooms.Updates(room.ID, fields); err != nil {
		return err
	}

	s.logger.Info("room status updated",
		zap.Uint("roomId", room.ID),
		zap.String("number", room.RoomNumber),
		zap.String("status", status),
		zap.String("occupant", occupantName),
	)
	return nil
}

// SetStatusByRef is SetStatus for callers holding a code or number instead of
// a numeric id.
func (s *RoomService) SetStatusByRef(ref, status, occupantName, notes string) error {
	room, err := s.rooms.FindByRef(ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: room %q", ErrNotFound, ref)
	}
	if err != nil {
		return err
	}
	return s.SetStatus(room.ID, status, occupantName, notes)
}
