package handler_test

import (
	"context"

	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
)

type fakeOfficeUsecase struct {
	createResp *dto.OfficeResponse
	createErr  error
	listResp   *dto.OfficeListResponse
	listErr    error
	lastCreate *dto.CreateOfficeRequest
}

func (f *fakeOfficeUsecase) CreateOffice(ctx context.Context, req *dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	f.lastCreate = req
	return f.createResp, f.createErr
}

func (f *fakeOfficeUsecase) GetAllOffices(ctx context.Context) (*dto.OfficeListResponse, error) {
	return f.listResp, f.listErr
}

type fakeReferralUsecase struct {
	submitResp  *dto.ReferralResponse
	submitErr   error
	reviewResp  *dto.ReferralResponse
	reviewErr   error
	pendingResp *dto.DirectoryListResponse
	pendingErr  error

	lastSubmit   *dto.SubmitReferralRequest
	lastReviewID int
	lastReview   *dto.ReviewReferralRequest
}

func (f *fakeReferralUsecase) SubmitReferral(ctx context.Context, req *dto.SubmitReferralRequest) (*dto.ReferralResponse, error) {
	f.lastSubmit = req
	return f.submitResp, f.submitErr
}

func (f *fakeReferralUsecase) ReviewReferral(ctx context.Context, referralID int, req *dto.ReviewReferralRequest) (*dto.ReferralResponse, error) {
	f.lastReviewID = referralID
	f.lastReview = req
	return f.reviewResp, f.reviewErr
}

func (f *fakeReferralUsecase) GetPendingReferrals(ctx context.Context) (*dto.DirectoryListResponse, error) {
	return f.pendingResp, f.pendingErr
}

type fakeDirectoryUsecase struct {
	queryResp     *dto.DirectoryListResponse
	queryErr      error
	searchResp    *dto.DirectoryListResponse
	searchErr     error
	locationsResp *dto.DirectoryListResponse
	locationsErr  error

	lastFilter *entity.ReferralFilter
	lastTerm   string
}

func (f *fakeDirectoryUsecase) QueryDirectory(ctx context.Context, filter *entity.ReferralFilter) (*dto.DirectoryListResponse, error) {
	f.lastFilter = filter
	return f.queryResp, f.queryErr
}

func (f *fakeDirectoryUsecase) SearchDirectory(ctx context.Context, term string) (*dto.DirectoryListResponse, error) {
	f.lastTerm = term
	return f.searchResp, f.searchErr
}

func (f *fakeDirectoryUsecase) ListWithLocations(ctx context.Context) (*dto.DirectoryListResponse, error) {
	return f.locationsResp, f.locationsErr
}
