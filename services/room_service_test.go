package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pousada-backend/models"
)

func newRoomFixture(t *testing.T) (*RoomService, *fakeRoomStore, *fakeReservationStore) {
	t.Helper()
	rooms := newFakeRoomStore()
	reservations := newFakeReservationStore()
	return NewRoomService(rooms, reservations, zap.NewNop()), rooms, reservations
}

func TestRoomCreateDefaults(t *testing.T) {
	service, _, _ := newRoomFixture(t)

	room := &models.Room{RoomNumber: "  105  "}
	require.NoError(t, service.Create(room))
	assert.Equal(t, "105", room.RoomNumber)
	assert.Equal(t, models.StatusAvailable, room.Status)

	err := service.Create(&models.Room{})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRoomUpdateStripsProtectedFields(t *testing.T) {
	service, rooms, _ := newRoomFixture(t)
	room := &models.Room{RoomNumber: "105", Floor: "1"}
	require.NoError(t, rooms.Create(room))

	require.NoError(t, service.Update(room.ID, map[string]interface{}{
		"id":    uint(99),
		"floor": "2",
	}))

	stored, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", stored.Floor)
	assert.Equal(t, room.ID, stored.ID)
}

func TestSetStatusAvailableClearsOccupant(t *testing.T) {
	service, rooms, _ := newRoomFixture(t)
	room := &models.Room{RoomNumber: "105"}
	require.NoError(t, rooms.Create(room))

	require.NoError(t, service.SetStatus(room.ID, models.StatusOccupied, "Ana", "tardia"))
	stored, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Guest)
	assert.Equal(t, "Ana", *stored.Guest)
	require.NotNil(t, stored.GuestNotes)
	assert.Equal(t, "tardia", *stored.GuestNotes)

	// The occupant passed alongside "available" is discarded, always.
	require.NoError(t, service.SetStatus(room.ID, models.StatusAvailable, "Intruso", "nota"))
	stored, err = rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, stored.Status)
	assert.Nil(t, stored.Guest)
	assert.Nil(t, stored.GuestNotes)
}

func TestDeleteRefusedWhileActivelyReserved(t *testing.T) {
	service, rooms, reservations := newRoomFixture(t)
	room := &models.Room{RoomNumber: "105", RoomCode: "RM-105"}
	require.NoError(t, rooms.Create(room))

	require.NoError(t, reservations.Create(&models.Reservation{
		GuestName: "Ana",
		RoomID:    &room.ID,
		CheckIn:   "2026-03-10",
		CheckOut:  "2026-03-13",
		Status:    models.StatusReserved,
	}))

	err := service.Delete(room.ID)
	assert.True(t, errors.Is(err, ErrInvalidInput), "a claimed room cannot be deleted")
	_, err = rooms.FindByID(room.ID)
	assert.NoError(t, err, "the room is untouched")
}

func TestDeleteReleasedRoom(t *testing.T) {
	service, rooms, reservations := newRoomFixture(t)
	room := &models.Room{RoomNumber: "105", RoomCode: "RM-105"}
	require.NoError(t, rooms.Create(room))

	// A checked-out stay no longer claims the room.
	require.NoError(t, reservations.Create(&models.Reservation{
		GuestName:      "Ana",
		RoomID:         &room.ID,
		CheckIn:        "2026-03-10",
		CheckOut:       "2026-03-13",
		Status:         models.StatusOccupied,
		CheckOutStatus: models.SubStatusDone,
	}))
	require.NoError(t, reservations.Create(&models.Reservation{
		GuestName: "Bia",
		RoomID:    &room.ID,
		Status:    models.StatusCancelled,
	}))

	require.NoError(t, service.Delete(room.ID))

	assert.True(t, errors.Is(service.Delete(room.ID), ErrNotFound))
}

func TestSetStatusByRef(t *testing.T) {
	service, rooms, _ := newRoomFixture(t)
	require.NoError(t, rooms.Create(&models.Room{RoomNumber: "105", RoomCode: "RM-105"}))

	require.NoError(t, service.SetStatusByRef("RM-105", models.StatusMaintenance, "", ""))
	stored, err := rooms.FindByRef("105")
	require.NoError(t, err)
	assert.Equal(t, models.StatusMaintenance, stored.Status)

	err = service.SetStatusByRef("RM-999", models.StatusAvailable, "", "")
	assert.True(t, errors.Is(err, ErrNotFound))
}
