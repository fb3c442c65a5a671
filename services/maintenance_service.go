package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pousada-backend/models"
	"pousada-backend/utils"
)

type MaintenanceInput struct {
	RoomRef  string `json:"roomId"`
	Issue    string `json:"issue"`
	Priority string `json:"priority"`
	Notes    string `json:"notes"`
}

type MaintenanceService struct {
	tickets      MaintenanceStore
	rooms        RoomStore
	reservations ReservationStore
	directory    *RoomService
	logger       *zap.Logger
}

func NewMaintenanceService(tickets MaintenanceStore, rooms RoomStore, reservations ReservationStore, directory *RoomService, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		tickets:      tickets,
		rooms:        rooms,
		reservations: reservations,
		directory:    directory,
		logger:       logger,
	}
}

func (s *MaintenanceService) List() ([]models.MaintenanceTicket, error) {
	return s.tickets.List()
}

// Open registers a ticket and flags the room as under maintenance. The
// occupant annotation is left alone: maintenance does not evict anyone.
func (s *MaintenanceService) Open(in MaintenanceInput) (*models.MaintenanceTicket, error) {
	if strings.TrimSpace(in.RoomRef) == "" {
		return nil, fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Issue) == "" {
		return nil, fmt.Errorf("%w: issue is required", ErrInvalidInput)
	}

	room, err := s.rooms.FindByRef(in.RoomRef)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: room %q", ErrNotFound, in.RoomRef)
	}
	if err != nil {
		return nil, err
	}

	ticket := &models.MaintenanceTicket{
		RoomID:   &room.ID,
		RoomCode: room.Label(),
		Issue:    in.Issue,
		Priority: in.Priority,
		Status:   models.MaintenanceOpen,
		OpenedAt: time.Now(),
		Notes:    in.Notes,
	}
	if err := s.tickets.Create(ticket); err != nil {
		return nil, err
	}

	if err := s.rooms.Updates(room.ID, map[string]interface{}{"status": models.StatusMaintenance}); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance opened",
		zap.Uint("ticketId", ticket.ID), zap.String("room", ticket.RoomCode))
	return ticket, nil
}

// SetStatus advances the ticket. Completing it hands the room back: to
// available when no active reservation claims it, otherwise to the status the
// claiming reservation's dates derive.
func (s *MaintenanceService) SetStatus(id uint, status string, completedOn *string, notes string) error {
	switch status {
	case models.MaintenanceOpen, models.MaintenanceInProgress, models.MaintenanceDone:
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	ticket, err := s.tickets.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: maintenance ticket %d", ErrNotFound, id)
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{"status": status}
	if notes != "" {
		fields["notes"] = notes
	}
	if status == models.MaintenanceDone {
		done := time.Now()
		if completedOn != nil {
			if parsed, parseErr := utils.ParseDate(*completedOn); parseErr == nil {
				done = parsed
			}
		}
		fields["completed_on"] = done
	}
	if err := s.tickets.Updates(ticket.ID, fields); err != nil {
		return err
	}

	if status == models.MaintenanceDone && ticket.RoomID != nil {
		if err := s.releaseRoom(*ticket.RoomID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MaintenanceService) releaseRoom(roomID uint) error {
	active, err := s.reservations.ListActiveByRoom(roomID)
	if err != nil {
		return err
	}

	for _, res := range active {
		in, out, ok := stayDatesLenient(res)
		if !ok {
			continue
		}
		derived := DeriveStatus(utils.Today(), in, out)
		if derived == models.StatusAvailable {
			continue
		}
		return s.directory.SetStatus(roomID, derived, res.OccupantLabel(), res.Notes)
	}
	return s.directory.SetStatus(roomID, models.StatusAvailable, "", "")
}

func (s *MaintenanceService) Delete(id uint) error {
	err := s.tickets.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: maintenance ticket %d", ErrNotFound, id)
	}
	return err
}
