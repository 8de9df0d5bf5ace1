package repository

import (
	"doctor-referral-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type OfficeRepository interface {
	Create(db *gorm.DB, office *entity.Office) error
	FindByID(db *gorm.DB, id int) (*entity.Office, error)
	FindAll(db *gorm.DB) ([]entity.Office, error)
}
