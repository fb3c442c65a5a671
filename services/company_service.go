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

// CompanyInput mirrors GuestInput for corporate occupants.
type CompanyInput struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	MainContact string `json:"mainContact"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`

	RoomRef  string      `json:"roomId"`
	CheckIn  string      `json:"checkIn"`
	CheckOut string      `json:"checkOut"`
	Guests   int         `json:"guests"`
	Value    interface{} `json:"value"`
	Notes    string      `json:"notes"`
}

func (in CompanyInput) stay() StayRequest {
	return StayRequest{
		RoomRef:  in.RoomRef,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   in.Guests,
		Value:    utils.ParseAmount(in.Value),
		Notes:    in.Notes,
	}
}

type CompanyService struct {
	companies    CompanyStore
	reservations *ReservationService
	directory    *RoomService
	logger       *zap.Logger
}

func NewCompanyService(companies CompanyStore, reservations *ReservationService, directory *RoomService, logger *zap.Logger) *CompanyService {
	return &CompanyService{companies: companies, reservations: reservations, directory: directory, logger: logger}
}

func (s *CompanyService) List() ([]models.Company, error) {
	return s.companies.List()
}

func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	company, err := s.companies.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: company %d", ErrNotFound, id)
	}
	return company, err
}

func (s *CompanyService) validate(in CompanyInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.RoomRef) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	_, _, err := ParseStayDates(in.CheckIn, in.CheckOut)
	return err
}

func (s *CompanyService) Create(in CompanyInput) (*models.Company, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	stay := in.stay()
	company := &models.Company{
		Name:        in.Name,
		CNPJ:        in.CNPJ,
		MainContact: in.MainContact,
		Phone:       in.Phone,
		Email:       in.Email,
		RoomCode:    in.RoomRef,
		RoomNumber:  s.reservations.resolveRoomNumber("", in.RoomRef),
		CheckIn:     in.CheckIn,
		CheckOut:    in.CheckOut,
		Guests:      stay.Guests,
		Value:       stay.Value,
		Notes:       in.Notes,
	}
	if company.Guests <= 0 {
		company.Guests = 1
	}
	if err := s.companies.Create(company); err != nil {
		return nil, err
	}

	occ := Occupant{CompanyID: &company.ID, Name: company.Name}
	if _, err := s.reservations.CreateForOccupant(occ, stay); err != nil {
		return nil, err
	}

	s.logger.Info("company created", zap.Uint("id", company.ID), zap.String("name", company.Name))
	return company, nil
}

func (s *CompanyService) Update(id uint, in CompanyInput) error {
	company, err := s.GetByID(id)
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

	oldRoom := company.RoomCode
	if err := s.companies.Updates(company.ID, map[string]interface{}{
		"name":         in.Name,
		"cnpj":         in.CNPJ,
		"main_contact": in.MainContact,
		"phone":        in.Phone,
		"email":        in.Email,
		"room_code":    in.RoomRef,
		"room_number":  s.reservations.resolveRoomNumber("", in.RoomRef),
		"check_in":     in.CheckIn,
		"check_out":    in.CheckOut,
		"guests":       stay.Guests,
		"value":        stay.Value,
		"notes":        in.Notes,
	}); err != nil {
		return err
	}

	if oldRoom != "" && oldRoom != in.RoomRef {
		if err := s.directory.SetStatusByRef(oldRoom, models.StatusAvailable, "", ""); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if err := s.directory.SetStatusByRef(in.RoomRef, status, in.Name, in.Notes); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	occ := Occupant{CompanyID: &company.ID, Name: in.Name}
	return s.reservations.SyncLatest(occ, stay, status)
}

// NewReservation freezes the company's current reservation as history and
// books a new one, updating the company's denormalized stay.
func (s *CompanyService) NewReservation(id uint, in CompanyInput) (*models.Reservation, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	occ := Occupant{CompanyID: &company.ID, Name: in.Name}
	res, err := s.reservations.Supersede(occ, company.RoomCode, in.stay())
	if err != nil {
		return nil, err
	}

	err = s.companies.Updates(company.ID, map[string]interface{}{
		"name":         in.Name,
		"cnpj":         in.CNPJ,
		"main_contact": in.MainContact,
		"phone":        in.Phone,
		"email":        in.Email,
		"room_code":    in.RoomRef,
		"room_number":  res.RoomNumber,
		"check_in":     in.CheckIn,
		"check_out":    in.CheckOut,
		"guests":       res.Guests,
		"value":        res.Value,
		"notes":        in.Notes,
	})
	return res, err
}

func (s *CompanyService) Delete(id uint) error {
	company, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.companies.Delete(company.ID); err != nil {
		return err
	}
	occ := Occupant{CompanyID: &company.ID, Name: company.Name}
	if err := s.reservations.DeleteForOccupant(occ); err != nil {
		return err
	}
	s.logger.Info("company deleted with reservations", zap.Uint("id", company.ID))
	return nil
}
