package services

import (
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	"pousada-backend/models"
)

// In-memory stores backing the service tests. Updates applies the same
// column-keyed field maps the gorm repositories receive.

type fakeRoomStore struct {
	rooms  map[uint]*models.Room
	nextID uint
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[uint]*models.Room{}, nextID: 1}
}

func (f *fakeRoomStore) Create(room *models.Room) error {
	room.ID = f.nextID
	f.nextID++
	clone := *room
	f.rooms[room.ID] = &clone
	return nil
}

func (f *fakeRoomStore) FindByID(id uint) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *room
	return &clone, nil
}

func (f *fakeRoomStore) FindByRef(ref string) (*models.Room, error) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		if room, ok := f.rooms[uint(id)]; ok {
			clone := *room
			return &clone, nil
		}
	}
	for _, room := range f.rooms {
		if room.RoomCode == ref {
			clone := *room
			return &clone, nil
		}
	}
	for _, room := range f.rooms {
		if room.RoomNumber == ref {
			clone := *room
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoomStore) List() ([]models.Room, error) {
	ids := make([]int, 0, len(f.rooms))
	for id := range f.rooms {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]models.Room, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.rooms[uint(id)])
	}
	return out, nil
}

func (f *fakeRoomStore) Updates(id uint, fields map[string]interface{}) error {
	room, ok := f.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			room.Status = value.(string)
		case "guest":
			room.Guest = strPtrOrNil(value)
		case "guest_notes":
			room.GuestNotes = strPtrOrNil(value)
		case "room_number":
			room.RoomNumber = value.(string)
		case "room_code":
			room.RoomCode = value.(string)
		case "floor":
			room.Floor = value.(string)
		case "description":
			room.Description = value.(string)
		}
	}
	return nil
}

func (f *fakeRoomStore) Delete(id uint) error {
	if _, ok := f.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeReservationStore struct {
	reservations map[uint]*models.Reservation
	nextID       uint
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: map[uint]*models.Reservation{}, nextID: 1}
}

func (f *fakeReservationStore) Create(res *models.Reservation) error {
	res.ID = f.nextID
	f.nextID++
	clone := *res
	f.reservations[res.ID] = &clone
	return nil
}

func (f *fakeReservationStore) FindByID(id uint) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *res
	return &clone, nil
}

func (f *fakeReservationStore) List() ([]models.Reservation, error) {
	ids := make([]int, 0, len(f.reservations))
	for id := range f.reservations {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]models.Reservation, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.reservations[uint(id)])
	}
	return out, nil
}

func (f *fakeReservationStore) LatestByGuest(guestID uint) (*models.Reservation, error) {
	var latest *models.Reservation
	for _, res := range f.reservations {
		if res.GuestID == nil || *res.GuestID != guestID {
			continue
		}
		if latest == nil || res.ID > latest.ID {
			latest = res
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeReservationStore) LatestByCompany(companyID uint) (*models.Reservation, error) {
	var latest *models.Reservation
	for _, res := range f.reservations {
		if res.CompanyID == nil || *res.CompanyID != companyID {
			continue
		}
		if latest == nil || res.ID > latest.ID {
			latest = res
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeReservationStore) ListActiveByRoom(roomID uint) ([]models.Reservation, error) {
	out := []models.Reservation{}
	for _, res := range f.reservations {
		if res.RoomID == nil || *res.RoomID != roomID {
			continue
		}
		switch res.Status {
		case models.StatusReserved, models.StatusConfirmed, models.StatusOccupied:
		default:
			continue
		}
		if res.CheckOutStatus == models.SubStatusDone {
			continue
		}
		out = append(out, *res)
	}
	return out, nil
}

func (f *fakeReservationStore) Updates(id uint, fields map[string]interface{}) error {
	res, ok := f.reservations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			res.Status = value.(string)
		case "check_in_status":
			res.CheckInStatus = value.(string)
		case "check_out_status":
			res.CheckOutStatus = value.(string)
		case "payment_status":
			res.PaymentStatus = value.(string)
		case "payment_method":
			res.PaymentMethod = strPtrOrNil(value)
		case "value":
			switch v := value.(type) {
			case float64:
				res.Value = v
			case int:
				res.Value = float64(v)
			}
		case "canceled_at":
			t := value.(time.Time)
			res.CanceledAt = &t
		case "actual_check_out":
			t := value.(time.Time)
			res.ActualCheckOut = &t
		case "room_id":
			res.RoomID = uintPtr(value.(uint))
		case "room_code":
			res.RoomCode = value.(string)
		case "room_number":
			res.RoomNumber = value.(string)
		case "check_in":
			res.CheckIn = value.(string)
		case "check_out":
			res.CheckOut = value.(string)
		case "guests":
			res.Guests = value.(int)
		case "notes":
			res.Notes = value.(string)
		case "guest_name":
			res.GuestName = value.(string)
		case "company_name":
			res.CompanyName = value.(string)
		}
	}
	return nil
}

func (f *fakeReservationStore) DeleteByGuest(guestID uint) error {
	for id, res := range f.reservations {
		if res.GuestID != nil && *res.GuestID == guestID {
			delete(f.reservations, id)
		}
	}
	return nil
}

func (f *fakeReservationStore) DeleteByCompany(companyID uint) error {
	for id, res := range f.reservations {
		if res.CompanyID != nil && *res.CompanyID == companyID {
			delete(f.reservations, id)
		}
	}
	return nil
}

func (f *fakeReservationStore) BulkSetRoomNumbers(updates map[uint]string, chunkSize int) (int, error) {
	updated := 0
	for id, number := range updates {
		if res, ok := f.reservations[id]; ok {
			res.RoomNumber = number
			updated++
		}
	}
	return updated, nil
}

type fakeGuestStore struct {
	guests map[uint]*models.Guest
	nextID uint
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{guests: map[uint]*models.Guest{}, nextID: 1}
}

func (f *fakeGuestStore) Create(guest *models.Guest) error {
	guest.ID = f.nextID
	f.nextID++
	clone := *guest
	f.guests[guest.ID] = &clone
	return nil
}

func (f *fakeGuestStore) FindByID(id uint) (*models.Guest, error) {
	guest, ok := f.guests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *guest
	return &clone, nil
}

func (f *fakeGuestStore) List() ([]models.Guest, error) {
	out := make([]models.Guest, 0, len(f.guests))
	for _, guest := range f.guests {
		out = append(out, *guest)
	}
	return out, nil
}

func (f *fakeGuestStore) Updates(id uint, fields map[string]interface{}) error {
	guest, ok := f.guests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "full_name":
			guest.FullName = value.(string)
		case "cpf":
			guest.CPF = value.(string)
		case "phone":
			guest.Phone = value.(string)
		case "email":
			guest.Email = value.(string)
		case "room_code":
			guest.RoomCode = value.(string)
		case "room_number":
			guest.RoomNumber = value.(string)
		case "check_in":
			guest.CheckIn = value.(string)
		case "check_out":
			guest.CheckOut = value.(string)
		case "guests":
			guest.Guests = value.(int)
		case "value":
			guest.Value = value.(float64)
		case "notes":
			guest.Notes = value.(string)
		}
	}
	return nil
}

func (f *fakeGuestStore) Delete(id uint) error {
	if _, ok := f.guests[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.guests, id)
	return nil
}

type fakeMaintenanceStore struct {
	tickets map[uint]*models.MaintenanceTicket
	nextID  uint
}

func newFakeMaintenanceStore() *fakeMaintenanceStore {
	return &fakeMaintenanceStore{tickets: map[uint]*models.MaintenanceTicket{}, nextID: 1}
}

func (f *fakeMaintenanceStore) Create(ticket *models.MaintenanceTicket) error {
	ticket.ID = f.nextID
	f.nextID++
	clone := *ticket
	f.tickets[ticket.ID] = &clone
	return nil
}

func (f *fakeMaintenanceStore) FindByID(id uint) (*models.MaintenanceTicket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *ticket
	return &clone, nil
}

func (f *fakeMaintenanceStore) List() ([]models.MaintenanceTicket, error) {
	out := make([]models.MaintenanceTicket, 0, len(f.tickets))
	for _, ticket := range f.tickets {
		out = append(out, *ticket)
	}
	return out, nil
}

func (f *fakeMaintenanceStore) Updates(id uint, fields map[string]interface{}) error {
	ticket, ok := f.tickets[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			ticket.Status = value.(string)
		case "notes":
			ticket.Notes = value.(string)
		case "completed_on":
			t := value.(time.Time)
			ticket.CompletedOn = &t
		}
	}
	return nil
}

func (f *fakeMaintenanceStore) Delete(id uint) error {
	if _, ok := f.tickets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tickets, id)
	return nil
}

type fakeFinanceStore struct {
	incomes  []models.Income
	expenses []models.Expense
}

func (f *fakeFinanceStore) CreateIncome(income *models.Income) error {
	income.ID = uint(len(f.incomes) + 1)
	f.incomes = append(f.incomes, *income)
	return nil
}

func (f *fakeFinanceStore) ListIncomes() ([]models.Income, error) {
	return append([]models.Income{}, f.incomes...), nil
}

func (f *fakeFinanceStore) CreateExpense(expense *models.Expense) error {
	expense.ID = uint(len(f.expenses) + 1)
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeFinanceStore) ListExpenses() ([]models.Expense, error) {
	return append([]models.Expense{}, f.expenses...), nil
}

type fakeUserStore struct {
	users map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserStore) Updates(id uint, fields map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "full_name":
			user.FullName = value.(string)
		case "email":
			user.Email = value.(string)
		case "role":
			user.Role = value.(string)
		case "password":
			user.Password = value.(string)
		case "active":
			user.Active = value.(bool)
		}
	}
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeConsultantLogStore struct {
	logs []models.ConsultantLog
}

func (f *fakeConsultantLogStore) Create(log *models.ConsultantLog) error {
	log.ID = uint(len(f.logs) + 1)
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeConsultantLogStore) List(limit int) ([]models.ConsultantLog, error) {
	if limit <= 0 || limit > len(f.logs) {
		limit = len(f.logs)
	}
	return append([]models.ConsultantLog{}, f.logs[:limit]...), nil
}

func strPtrOrNil(value interface{}) *string {
	if value == nil {
		return nil
	}
	s := value.(string)
	return &s
}

func uintPtr(v uint) *uint {
	return &v
}
