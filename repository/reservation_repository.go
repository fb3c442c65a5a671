package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(res *models.Reservation) error {
	return r.db.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) List() ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ReservationRepository) LatestByGuest(guestID uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.Where("guest_id = ?", guestID).Order("id DESC").First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) LatestByCompany(companyID uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.Where("company_id = ?", companyID).Order("id DESC").First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListActiveByRoom returns the reservations still holding a claim on the
// room: anything not cancelled whose checkout has not been confirmed.
func (r *ReservationRepository) ListActiveByRoom(roomID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.
		Where("room_id = ? AND status IN ? AND check_out_status <> ?",
			roomID,
			[]string{models.StatusReserved, models.StatusConfirmed, models.StatusOccupied},
			models.SubStatusDone).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Reservation{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ReservationRepository) DeleteByGuest(guestID uint) error {
	return r.db.Where("guest_id = ?", guestID).Delete(&models.Reservation{}).Error
}

func (r *ReservationRepository) DeleteByCompany(companyID uint) error {
	return r.db.Where("company_id = ?", companyID).Delete(&models.Reservation{}).Error
}

// BulkSetRoomNumbers applies roomNumber backfills in chunks. Chunking keeps
// each transaction inside the store's batch write limit; it is not an
// atomicity guarantee and partial progress on failure is acceptable.
func (r *ReservationRepository) BulkSetRoomNumbers(updates map[uint]string, chunkSize int) (int, error) {
	if chunkSize <= 0 {
		chunkSize = 400
	}

	ids := make([]uint, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}

	applied := 0
	for start := 0; start < len(ids); start += chunkSize {
		end := start + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		err := r.db.Transaction(func(tx *gorm.DB) error {
			for _, id := range chunk {
				if err := tx.Model(&models.Reservation{}).
					Where("id = ?", id).
					Update("room_number", updates[id]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied += len(chunk)
	}
	return applied, nil
}
