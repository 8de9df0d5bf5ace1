package repository

import (
	"doctor-referral-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type ReferralRepository interface {
	Create(db *gorm.DB, referral *entity.Referral) error
	FindByID(db *gorm.DB, id int) (*entity.Referral, error)
	FindPending(db *gorm.DB) ([]entity.Referral, error)
	FindApproved(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error)
	SearchApproved(db *gorm.DB, term string) ([]entity.Referral, error)
	FindApprovedWithAddress(db *gorm.DB) ([]entity.Referral, error)
	UpdateReview(db *gorm.DB, referral *entity.Referral) error
}
