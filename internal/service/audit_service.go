package service

import (
	"doctor-referral-directory/internal/domain/entity"
	"doctor-referral-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records moderation-relevant events in the audit trail.
// Writes are best effort: a failed audit entry is logged and never fails the
// mutation it describes.
type AuditService interface {
	LogOfficeCreated(tx *gorm.DB, office *entity.Office) error
	LogReferralSubmitted(tx *gorm.DB, referral *entity.Referral) error
	LogReviewDecision(tx *gorm.DB, referral *entity.Referral, previous entity.ApprovalStatus) error
}

type auditService struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (s *auditService) LogOfficeCreated(tx *gorm.DB, office *entity.Office) error {
	return s.write(tx, &entity.AuditLog{
		Action: entity.AuditActionOfficeCreate,
		Metadata: entity.JSON{
			"office_id":   office.ID,
			"office_name": office.Name,
		},
	})
}

func (s *auditService) LogReferralSubmitted(tx *gorm.DB, referral *entity.Referral) error {
	return s.write(tx, &entity.AuditLog{
		Actor:  referral.SubmittedBy,
		Action: entity.AuditActionReferralSubmit,
		Metadata: entity.JSON{
			"referral_id": referral.ID,
			"office_id":   referral.OfficeID,
			"doctor_name": referral.DoctorName,
		},
	})
}

func (s *auditService) LogReviewDecision(tx *gorm.DB, referral *entity.Referral, previous entity.ApprovalStatus) error {
	action := entity.AuditActionReferralApprove
	if referral.ApprovalStatus == entity.ApprovalStatusRejected {
		action = entity.AuditActionReferralReject
	}

	return s.write(tx, &entity.AuditLog{
		Actor:  referral.ApprovedBy,
		Action: action,
		Metadata: entity.JSON{
			"referral_id":     referral.ID,
			"previous_status": string(previous),
			"new_status":      string(referral.ApprovalStatus),
		},
	})
}

func (s *auditService) write(tx *gorm.DB, auditLog *entity.AuditLog) error {
	if err := s.auditLogRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}
	return nil
}
