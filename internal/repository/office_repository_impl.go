package repository

import (
	"errors"

	"doctor-referral-directory/internal/domain/entity"
	domainRepo "doctor-referral-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type officeRepository struct{}

func NewOfficeRepository() domainRepo.OfficeRepository {
	return &officeRepository{}
}

func (r *officeRepository) Create(db *gorm.DB, office *entity.Office) error {
	return db.Create(office).Error
}

func (r *officeRepository) FindByID(db *gorm.DB, id int) (*entity.Office, error) {
	var office entity.Office
	err := db.Where("id = ?", id).First(&office).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) FindAll(db *gorm.DB) ([]entity.Office, error) {
	var offices []entity.Office
	// Creation order; serial ids make this equivalent to created_at ASC.
	err := db.Order("id ASC").Find(&offices).Error
	if err != nil {
		return nil, err
	}
	return offices, nil
}
