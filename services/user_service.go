package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pousada-backend/models"
)

type UserInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

// UserService manages the back-office user directory. Passwords are stored
// hashed; nothing here performs authentication.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.List()
}

func (s *UserService) Create(in UserInput) (*models.User, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: fullName and email are required", ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must have at least 6 characters", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := s.users.FindByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s already registered", ErrInvalidInput, email)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = "staff"
	}
	user := &models.User{
		FullName: in.FullName,
		Email:    email,
		Role:     role,
		Password: string(hash),
		Active:   true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, in UserInput) error {
	if _, err := s.users.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	} else if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.FullName != "" {
		fields["full_name"] = in.FullName
	}
	if in.Email != "" {
		fields["email"] = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Role != "" {
		fields["role"] = in.Role
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return fmt.Errorf("%w: password must have at least 6 characters", ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password"] = string(hash)
	}
	if len(fields) == 0 {
		return nil
	}
	return s.users.Updates(id, fields)
}

func (s *UserService) Delete(id uint) error {
	err := s.users.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return err
}
