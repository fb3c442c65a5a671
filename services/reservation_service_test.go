package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pousada-backend/models"
	"pousada-backend/utils"
)

func newReservationFixture(t *testing.T) (*ReservationService, *fakeReservationStore, *fakeRoomStore) {
	t.Helper()
	rooms := newFakeRoomStore()
	reservations := newFakeReservationStore()
	directory := NewRoomService(rooms, reservations, zap.NewNop())
	service := NewReservationService(reservations, rooms, directory, zap.NewNop())
	return service, reservations, rooms
}

func seedRoom(t *testing.T, rooms *fakeRoomStore, number, code string) *models.Room {
	t.Helper()
	room := &models.Room{RoomNumber: number, RoomCode: code, Status: models.StatusAvailable}
	require.NoError(t, rooms.Create(room))
	return room
}

func futureStay(roomRef string) StayRequest {
	today := utils.Today()
	return StayRequest{
		RoomRef:  roomRef,
		CheckIn:  today.AddDate(0, 0, 5).Format(utils.DateLayout),
		CheckOut: today.AddDate(0, 0, 8).Format(utils.DateLayout),
		Guests:   2,
		Value:    450,
	}
}

func guestOccupant(id uint, name string) Occupant {
	return Occupant{GuestID: &id, Name: name}
}

func TestCreateForOccupantValidation(t *testing.T) {
	service, _, rooms := newReservationFixture(t)
	seedRoom(t, rooms, "105", "RM-105")

	guestID := uint(1)
	companyID := uint(2)

	_, err := service.CreateForOccupant(Occupant{GuestID: &guestID}, futureStay("RM-105"))
	assert.True(t, errors.Is(err, ErrInvalidInput), "missing name")

	_, err = service.CreateForOccupant(Occupant{Name: "Ana"}, futureStay("RM-105"))
	assert.True(t, errors.Is(err, ErrInvalidInput), "no owner")

	_, err = service.CreateForOccupant(Occupant{GuestID: &guestID, CompanyID: &companyID, Name: "Ana"}, futureStay("RM-105"))
	assert.True(t, errors.Is(err, ErrInvalidInput), "two owners")

	stay := futureStay("RM-105")
	stay.CheckIn, stay.CheckOut = stay.CheckOut, stay.CheckIn
	_, err = service.CreateForOccupant(guestOccupant(1, "Ana"), stay)
	assert.True(t, errors.Is(err, ErrInvalidDate), "inverted range")
}

func TestCreateForOccupantBooksRoom(t *testing.T) {
	service, _, rooms := newReservationFixture(t)
	room := seedRoom(t, rooms, "105", "RM-105")

	res, err := service.CreateForOccupant(guestOccupant(1, "Ana Souza"), futureStay("RM-105"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusReserved, res.Status)
	assert.Equal(t, models.SubStatusPending, res.CheckInStatus)
	assert.Equal(t, models.SubStatusPending, res.CheckOutStatus)
	assert.Equal(t, models.PaymentPending, res.PaymentStatus)
	assert.NotEmpty(t, res.ReferenceCode)
	assert.Equal(t, "105", res.RoomNumber)
	require.NotNil(t, res.RoomID)
	assert.Equal(t, room.ID, *res.RoomID)

	updated, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReserved, updated.Status)
	require.NotNil(t, updated.Guest)
	assert.Equal(t, "Ana Souza", *updated.Guest)
}

func TestCreateForOccupantSameDayArrivalIsConfirmed(t *testing.T) {
	service, _, rooms := newReservationFixture(t)
	seedRoom(t, rooms, "105", "RM-105")

	today := utils.Today()
	stay := StayRequest{
		RoomRef:  "RM-105",
		CheckIn:  today.Format(utils.DateLayout),
		CheckOut: today.AddDate(0, 0, 2).Format(utils.DateLayout),
	}
	res, err := service.CreateForOccupant(guestOccupant(1, "Ana"), stay)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, res.Status)
	assert.Equal(t, 1, res.Guests, "guest count defaults to 1")
}

func TestConfirmCheckInForcesOccupied(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	room := seedRoom(t, rooms, "105", "RM-105")

	res, err := service.CreateForOccupant(guestOccupant(1, "Ana"), futureStay("RM-105"))
	require.NoError(t, err)

	require.NoError(t, service.ConfirmCheckIn(res.ID))

	stored, err := reservations.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubStatusDone, stored.CheckInStatus)

	updated, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, updated.Status, "explicit check-in wins over derived status")
}

func TestConfirmCheckOutReleasesRoom(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	room := seedRoom(t, rooms, "105", "RM-105")

	res, err := service.CreateForOccupant(guestOccupant(1, "Ana"), futureStay("RM-105"))
	require.NoError(t, err)
	require.NoError(t, service.ConfirmCheckOut(res.ID))

	stored, err := reservations.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubStatusDone, stored.CheckOutStatus)
	require.NotNil(t, stored.ActualCheckOut)
	assert.WithinDuration(t, time.Now(), *stored.ActualCheckOut, time.Minute)

	updated, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, updated.Status)
	assert.Nil(t, updated.Guest)
}

func TestRegisterPaymentRequiresMethodAndAmount(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	seedRoom(t, rooms, "105", "RM-105")

	res, err := service.CreateForOccupant(guestOccupant(1, "Ana"), futureStay("RM-105"))
	require.NoError(t, err)

	amount := 500.0
	assert.True(t, errors.Is(service.RegisterPayment(res.ID, "", &amount), ErrInvalidInput))
	assert.True(t, errors.Is(service.RegisterPayment(res.ID, "Pix", nil), ErrInvalidInput))

	require.NoError(t, service.RegisterPayment(res.ID, "Pix", &amount))
	stored, err := reservations.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, stored.PaymentStatus)
	require.NotNil(t, stored.PaymentMethod)
	assert.Equal(t, "Pix", *stored.PaymentMethod)
	assert.Equal(t, 500.0, stored.Value)
}

func TestCancelClearsPaymentAndReleasesRoom(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	room := seedRoom(t, rooms, "105", "RM-105")

	res, err := service.CreateForOccupant(guestOccupant(1, "Ana"), futureStay("RM-105"))
	require.NoError(t, err)
	amount := 450.0
	require.NoError(t, service.RegisterPayment(res.ID, "Pix", &amount))

	require.NoError(t, service.Cancel(res.ID))

	stored, err := reservations.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
	assert.Equal(t, models.SubStatusCancelled, stored.CheckInStatus)
	assert.Equal(t, models.SubStatusCancelled, stored.CheckOutStatus)
	assert.Equal(t, models.PaymentCancelled, stored.PaymentStatus)
	assert.Nil(t, stored.PaymentMethod)
	assert.Zero(t, stored.Value)
	assert.NotNil(t, stored.CanceledAt)

	updated, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, updated.Status)
	assert.Nil(t, updated.Guest)
}

func TestCancelUnknownReservation(t *testing.T) {
	service, _, _ := newReservationFixture(t)
	assert.True(t, errors.Is(service.Cancel(99), ErrNotFound))
}

func TestSupersedeKeepsHistoryAndReleasesOldRoom(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	oldRoom := seedRoom(t, rooms, "105", "RM-105")
	seedRoom(t, rooms, "106", "RM-106")

	occ := guestOccupant(1, "Ana")
	first, err := service.CreateForOccupant(occ, futureStay("RM-105"))
	require.NoError(t, err)

	second, err := service.Supersede(occ, "RM-105", futureStay("RM-106"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := reservations.List()
	require.NoError(t, err)
	assert.Len(t, all, 2, "the superseded reservation stays as history")

	released, err := rooms.FindByID(oldRoom.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, released.Status)
}

func TestSupersedeSameRoomDoesNotRelease(t *testing.T) {
	service, _, rooms := newReservationFixture(t)
	room := seedRoom(t, rooms, "105", "RM-105")

	occ := guestOccupant(1, "Ana")
	_, err := service.CreateForOccupant(occ, futureStay("RM-105"))
	require.NoError(t, err)
	_, err = service.Supersede(occ, "RM-105", futureStay("RM-105"))
	require.NoError(t, err)

	updated, err := rooms.FindByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReserved, updated.Status)
}

func TestListDisplayDefaults(t *testing.T) {
	service, reservations, _ := newReservationFixture(t)

	guestID := uint(1)
	require.NoError(t, reservations.Create(&models.Reservation{
		GuestID:   &guestID,
		GuestName: "Ana",
		Status:    models.StatusReserved,
		CheckIn:   "2026-03-10",
		CheckOut:  "2026-03-13",
	}))

	views, err := service.List()
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, models.StatusConfirmed, view.Status, "room-level reserved reads as confirmed")
	assert.Equal(t, models.SubStatusPending, view.CheckInStatus)
	assert.Equal(t, models.SubStatusPending, view.CheckOutStatus)
	assert.Equal(t, models.PaymentPending, view.PaymentStatus)
	assert.Equal(t, "—", view.PaymentMethod)
	assert.Equal(t, "—", view.Room)
}

func TestBackfillRoomNumbersIsIdempotent(t *testing.T) {
	service, reservations, rooms := newReservationFixture(t)
	seedRoom(t, rooms, "105", "RM-105")

	guestID := uint(1)
	require.NoError(t, reservations.Create(&models.Reservation{
		GuestID: &guestID, GuestName: "Ana", RoomCode: "RM-105",
		CheckIn: "2026-03-10", CheckOut: "2026-03-13",
	}))
	require.NoError(t, reservations.Create(&models.Reservation{
		GuestID: &guestID, GuestName: "Ana", RoomCode: "RM-105", RoomNumber: "105",
		CheckIn: "2026-03-14", CheckOut: "2026-03-16",
	}))

	updated, err := service.BackfillRoomNumbers()
	require.NoError(t, err)
	assert.Equal(t, 1, updated, "only the row without a number is touched")

	stored, err := reservations.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "105", stored.RoomNumber)

	updated, err = service.BackfillRoomNumbers()
	require.NoError(t, err)
	assert.Zero(t, updated, "second run finds nothing to do")
}
