package usecase

import (
	"context"

	"doctor-referral-directory/internal/converter"
	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
	"doctor-referral-directory/internal/domain/repository"
	"doctor-referral-directory/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReferralUsecase interface {
	SubmitReferral(ctx context.Context, req *dto.SubmitReferralRequest) (*dto.ReferralResponse, error)
	ReviewReferral(ctx context.Context, referralID int, req *dto.ReviewReferralRequest) (*dto.ReferralResponse, error)
	GetPendingReferrals(ctx context.Context) (*dto.DirectoryListResponse, error)
}

type referralUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	referralRepo   repository.ReferralRepository
	officeRepo     repository.OfficeRepository
	auditService   service.AuditService
	directoryCache service.DirectoryCacheService
}

func NewReferralUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	officeRepo repository.OfficeRepository,
	auditService service.AuditService,
	directoryCache service.DirectoryCacheService,
) ReferralUsecase {
	return &referralUsecase{
		db:             db,
		log:            log,
		referralRepo:   referralRepo,
		officeRepo:     officeRepo,
		auditService:   auditService,
		directoryCache: directoryCache,
	}
}

// SubmitReferral is the only creation path for a referral. The submission
// always enters the queue as pending with no approver, whatever the caller
// sent.
func (u *referralUsecase) SubmitReferral(ctx context.Context, req *dto.SubmitReferralRequest) (*dto.ReferralResponse, error) {
	db := u.db.WithContext(ctx)

	office, err := u.officeRepo.FindByID(db, req.OfficeID)
	if err != nil {
		u.log.Warnf("Failed to find office: %+v", err)
		return nil, &StoreError{Op: "find office", Err: err}
	}
	if office == nil {
		return nil, &NotFoundError{Resource: "office", ID: int64(req.OfficeID)}
	}

	referral := &entity.Referral{
		OfficeID:           req.OfficeID,
		DoctorName:         req.DoctorName,
		Type:               entity.DoctorType(req.Type),
		Address:            req.Address,
		PhoneNumber:        req.PhoneNumber,
		Gender:             entity.Gender(req.Gender),
		OnlineAppointments: req.OnlineAppointments,
		URL:                entity.NormalizeURL(req.URL),
		WaitTime:           entity.WaitTime(req.WaitTime),
		SameDayService:     req.SameDayService,
		Comments:           req.Comments,
		ApprovalStatus:     entity.ApprovalStatusPending,
		SubmittedBy:        req.SubmittedBy,
		ApprovedBy:         nil,
	}

	if err := u.referralRepo.Create(db, referral); err != nil {
		u.log.Warnf("Failed to create referral: %+v", err)
		return nil, &StoreError{Op: "create referral", Err: err}
	}

	u.auditService.LogReferralSubmitted(db, referral)

	return converter.ReferralToResponse(referral), nil
}

// ReviewReferral applies a moderation decision. Re-review of an already
// reviewed referral is allowed and overwrites the previous decision; the
// update is a single statement so directory reads switch atomically.
func (u *referralUsecase) ReviewReferral(ctx context.Context, referralID int, req *dto.ReviewReferralRequest) (*dto.ReferralResponse, error) {
	db := u.db.WithContext(ctx)

	referral, err := u.referralRepo.FindByID(db, referralID)
	if err != nil {
		u.log.Warnf("Failed to find referral: %+v", err)
		return nil, &StoreError{Op: "find referral", Err: err}
	}
	if referral == nil {
		return nil, &NotFoundError{Resource: "referral", ID: int64(referralID)}
	}

	previous := referral.ApprovalStatus
	if err := referral.Review(entity.ApprovalStatus(req.ApprovalStatus), req.ApprovedBy); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := u.referralRepo.UpdateReview(db, referral); err != nil {
		u.log.Warnf("Failed to review referral: %+v", err)
		return nil, &StoreError{Op: "review referral", Err: err}
	}

	u.auditService.LogReviewDecision(db, referral, previous)

	// Approved visibility changed; drop cached directory views.
	u.directoryCache.Invalidate(ctx)

	return converter.ReferralToResponse(referral), nil
}

func (u *referralUsecase) GetPendingReferrals(ctx context.Context) (*dto.DirectoryListResponse, error) {
	referrals, err := u.referralRepo.FindPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find pending referrals: %+v", err)
		return nil, &StoreError{Op: "list pending referrals", Err: err}
	}

	return &dto.DirectoryListResponse{
		Entries: converter.ReferralsToDirectoryEntries(referrals),
		Total:   len(referrals),
	}, nil
}
