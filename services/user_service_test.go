package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateHashesPassword(t *testing.T) {
	users := newFakeUserStore()
	service := NewUserService(users)

	user, err := service.Create(UserInput{
		FullName: "Maria",
		Email:    "  Maria@Pousada.LOCAL ",
		Password: "segredo1",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@pousada.local", user.Email)
	assert.Equal(t, "staff", user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "segredo1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("segredo1")))
}

func TestUserCreateValidation(t *testing.T) {
	users := newFakeUserStore()
	service := NewUserService(users)

	_, err := service.Create(UserInput{Email: "a@b.c", Password: "segredo1"})
	assert.True(t, errors.Is(err, ErrInvalidInput), "missing name")

	_, err = service.Create(UserInput{FullName: "Maria", Email: "a@b.c", Password: "123"})
	assert.True(t, errors.Is(err, ErrInvalidInput), "short password")

	_, err = service.Create(UserInput{FullName: "Maria", Email: "a@b.c", Password: "segredo1"})
	require.NoError(t, err)
	_, err = service.Create(UserInput{FullName: "Outra", Email: "a@b.c", Password: "segredo2"})
	assert.True(t, errors.Is(err, ErrInvalidInput), "duplicate email")
}

func TestUserUpdate(t *testing.T) {
	users := newFakeUserStore()
	service := NewUserService(users)

	user, err := service.Create(UserInput{FullName: "Maria", Email: "a@b.c", Password: "segredo1"})
	require.NoError(t, err)

	inactive := false
	require.NoError(t, service.Update(user.ID, UserInput{Role: "admin", Active: &inactive}))

	stored, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", stored.Role)
	assert.False(t, stored.Active)
	assert.Equal(t, "Maria", stored.FullName, "untouched fields stay")

	assert.True(t, errors.Is(service.Update(99, UserInput{Role: "admin"}), ErrNotFound))
}
