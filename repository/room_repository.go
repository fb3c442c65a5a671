// Package repository holds one typed gorm-backed repository per entity.
// Services depend on small interfaces these satisfy, never on gorm handles
// shared as package globals.
package repository

import (
	"strconv"

	"gorm.io/gorm"

	"pousada-backend/models"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *RoomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByRef resolves a room from whatever reference a caller holds: a numeric
// id, a code like "RM-105" or the display number itself.
func (r *RoomRepository) FindByRef(ref string) (*models.Room, error) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		var room models.Room
		if err := r.db.First(&room, uint(id)).Error; err == nil {
			return &room, nil
		}
	}
	var room models.Room
	err := r.db.Where("room_code = ? OR room_number = ?", ref, ref).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Room{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RoomRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
