package services

import (
	"pousada-backend/models"
)

// Store interfaces consumed by the services. The repository package provides
// the gorm-backed implementations; tests substitute in-memory fakes.

type RoomStore interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	FindByRef(ref string) (*models.Room, error)
	List() ([]models.Room, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type ReservationStore interface {
	Create(res *models.Reservation) error
	FindByID(id uint) (*models.Reservation, error)
	List() ([]models.Reservation, error)
	LatestByGuest(guestID uint) (*models.Reservation, error)
	LatestByCompany(companyID uint) (*models.Reservation, error)
	ListActiveByRoom(roomID uint) ([]models.Reservation, error)
	Updates(id uint, fields map[string]interface{}) error
	DeleteByGuest(guestID uint) error
	DeleteByCompany(companyID uint) error
	BulkSetRoomNumbers(updates map[uint]string, chunkSize int) (int, error)
}

type GuestStore interface {
	Create(guest *models.Guest) error
	FindByID(id uint) (*models.Guest, error)
	List() ([]models.Guest, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type CompanyStore interface {
	Create(company *models.Company) error
	FindByID(id uint) (*models.Company, error)
	List() ([]models.Company, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type MaintenanceStore interface {
	Create(ticket *models.MaintenanceTicket) error
	FindByID(id uint) (*models.MaintenanceTicket, error)
	List() ([]models.MaintenanceTicket, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type FinanceStore interface {
	CreateIncome(income *models.Income) error
	ListIncomes() ([]models.Income, error)
	CreateExpense(expense *models.Expense) error
	ListExpenses() ([]models.Expense, error)
}

type SettingStore interface {
	Get() (*models.PropertySetting, error)
	Save(setting *models.PropertySetting) error
}

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type ConsultantLogStore interface {
	Create(log *models.ConsultantLog) error
	List(limit int) ([]models.ConsultantLog, error)
}
