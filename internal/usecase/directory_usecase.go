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

type DirectoryUsecase interface {
	QueryDirectory(ctx context.Context, filter *entity.ReferralFilter) (*dto.DirectoryListResponse, error)
	SearchDirectory(ctx context.Context, term string) (*dto.DirectoryListResponse, error)
	ListWithLocations(ctx context.Context) (*dto.DirectoryListResponse, error)
}

type directoryUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	referralRepo   repository.ReferralRepository
	directoryCache service.DirectoryCacheService
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	directoryCache service.DirectoryCacheService,
) DirectoryUsecase {
	return &directoryUsecase{
		db:             db,
		log:            log,
		referralRepo:   referralRepo,
		directoryCache: directoryCache,
	}
}

// QueryDirectory returns approved referrals matching the filter. The
// unfiltered listing is served through the cache; filtered queries always
// hit the database.
func (u *directoryUsecase) QueryDirectory(ctx context.Context, filter *entity.ReferralFilter) (*dto.DirectoryListResponse, error) {
	if isEmptyFilter(filter) {
		if cached, ok := u.directoryCache.GetReferrals(ctx, service.CacheKeyApprovedDirectory); ok {
			return toDirectoryList(cached), nil
		}
	}

	referrals, err := u.referralRepo.FindApproved(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to query directory: %+v", err)
		return nil, &StoreError{Op: "query directory", Err: err}
	}

	if isEmptyFilter(filter) {
		u.directoryCache.SetReferrals(ctx, service.CacheKeyApprovedDirectory, referrals)
	}

	return toDirectoryList(referrals), nil
}

// SearchDirectory is the wide free-text search: doctor name, office name,
// comments, address and specialty text, approved entries only.
func (u *directoryUsecase) SearchDirectory(ctx context.Context, term string) (*dto.DirectoryListResponse, error) {
	if term == "" {
		return nil, &ValidationError{Message: "search term is required"}
	}

	referrals, err := u.referralRepo.SearchApproved(u.db.WithContext(ctx), term)
	if err != nil {
		u.log.Warnf("Failed to search directory: %+v", err)
		return nil, &StoreError{Op: "search directory", Err: err}
	}

	return toDirectoryList(referrals), nil
}

// ListWithLocations returns approved referrals that carry an address, for
// the location view. The address is opaque text; no geocoding happens here.
func (u *directoryUsecase) ListWithLocations(ctx context.Context) (*dto.DirectoryListResponse, error) {
	if cached, ok := u.directoryCache.GetReferrals(ctx, service.CacheKeyDirectoryLocations); ok {
		return toDirectoryList(cached), nil
	}

	referrals, err := u.referralRepo.FindApprovedWithAddress(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list directory locations: %+v", err)
		return nil, &StoreError{Op: "list directory locations", Err: err}
	}

	u.directoryCache.SetReferrals(ctx, service.CacheKeyDirectoryLocations, referrals)

	return toDirectoryList(referrals), nil
}

func isEmptyFilter(filter *entity.ReferralFilter) bool {
	if filter == nil {
		return true
	}
	return filter.OfficeID == nil &&
		filter.DoctorName == "" &&
		filter.Type == "" &&
		filter.Gender == "" &&
		filter.WaitTime == "" &&
		filter.OnlineAppointments == nil &&
		filter.SameDayService == nil &&
		filter.Search == ""
}

func toDirectoryList(referrals []entity.Referral) *dto.DirectoryListResponse {
	return &dto.DirectoryListResponse{
		Entries: converter.ReferralsToDirectoryEntries(referrals),
		Total:   len(referrals),
	}
}
