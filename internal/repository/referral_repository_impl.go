package repository

import (
	"errors"
	"time"

	"doctor-referral-directory/internal/domain/entity"
	domainRepo "doctor-referral-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(db *gorm.DB, referral *entity.Referral) error {
	return db.Omit("Office").Create(referral).Error
}

func (r *referralRepository) FindByID(db *gorm.DB, id int) (*entity.Referral, error) {
	var referral entity.Referral
	err := db.Preload("Office").Where("id = ?", id).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) FindPending(db *gorm.DB) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := db.Preload("Office").
		Where("approval_status = ?", entity.ApprovalStatusPending).
		Order("created_at DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

// FindApproved returns approved referrals joined with their office.
// Supplied filter fields are combined with AND; the search field matches the
// doctor name or the office name as a case-insensitive substring.
func (r *referralRepository) FindApproved(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error) {
	var referrals []entity.Referral
	query := db.
		Joins("JOIN offices ON offices.id = doctor_referrals.office_id").
		Where("doctor_referrals.approval_status = ?", entity.ApprovalStatusApproved)

	if filter != nil {
		if filter.OfficeID != nil {
			query = query.Where("doctor_referrals.office_id = ?", *filter.OfficeID)
		}
		if filter.DoctorName != "" {
			query = query.Where("doctor_referrals.doctor_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
		if filter.Type != "" {
			query = query.Where("doctor_referrals.type = ?", filter.Type)
		}
		if filter.Gender != "" {
			query = query.Where("doctor_referrals.gender = ?", filter.Gender)
		}
		if filter.WaitTime != "" {
			query = query.Where("doctor_referrals.wait_time = ?", filter.WaitTime)
		}
		if filter.OnlineAppointments != nil {
			query = query.Where("doctor_referrals.online_appointments = ?", *filter.OnlineAppointments)
		}
		if filter.SameDayService != nil {
			query = query.Where("doctor_referrals.same_day_service = ?", *filter.SameDayService)
		}
		if filter.Search != "" {
			term := "%" + filter.Search + "%"
			query = query.Where(
				db.Where("doctor_referrals.doctor_name ILIKE ?", term).
					Or("offices.name ILIKE ?", term),
			)
		}
	}

	err := query.Preload("Office").Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

// SearchApproved is the wide full-text path: it matches the term against the
// doctor name, office name, comments, address and the specialty text, still
// restricted to approved referrals.
func (r *referralRepository) SearchApproved(db *gorm.DB, term string) ([]entity.Referral, error) {
	var referrals []entity.Referral
	pattern := "%" + term + "%"
	err := db.
		Joins("JOIN offices ON offices.id = doctor_referrals.office_id").
		Where("doctor_referrals.approval_status = ?", entity.ApprovalStatusApproved).
		Where(
			db.Where("doctor_referrals.doctor_name ILIKE ?", pattern).
				Or("offices.name ILIKE ?", pattern).
				Or("doctor_referrals.comments ILIKE ?", pattern).
				Or("doctor_referrals.address ILIKE ?", pattern).
				Or("doctor_referrals.type::text ILIKE ?", pattern),
		).
		Preload("Office").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r *referralRepository) FindApprovedWithAddress(db *gorm.DB) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := db.Preload("Office").
		Where("approval_status = ?", entity.ApprovalStatusApproved).
		Where("address IS NOT NULL").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

// UpdateReview persists a moderation decision as a single UPDATE limited to
// the review columns, so concurrent directory reads see either the old or
// the new row, never a partial one.
func (r *referralRepository) UpdateReview(db *gorm.DB, referral *entity.Referral) error {
	now := time.Now()
	result := db.Model(&entity.Referral{}).
		Where("id = ?", referral.ID).
		Updates(map[string]interface{}{
			"approval_status": referral.ApprovalStatus,
			"approved_by":     referral.ApprovedBy,
			"updated_at":      now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	referral.UpdatedAt = now
	return nil
}
