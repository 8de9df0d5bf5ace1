package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"doctor-referral-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormtests "gorm.io/gorm/utils/tests"
)

// The usecases only hand the *gorm.DB through to repositories, so the fakes
// below ignore it and a dummy dialector is enough to construct one.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormtests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeOfficeRepo struct {
	offices map[int]entity.Office
	nextID  int
	err     error
}

func newFakeOfficeRepo() *fakeOfficeRepo {
	return &fakeOfficeRepo{offices: make(map[int]entity.Office)}
}

func (f *fakeOfficeRepo) Create(db *gorm.DB, office *entity.Office) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	office.ID = f.nextID
	office.CreatedAt = time.Now()
	office.UpdatedAt = office.CreatedAt
	f.offices[office.ID] = *office
	return nil
}

func (f *fakeOfficeRepo) FindByID(db *gorm.DB, id int) (*entity.Office, error) {
	if f.err != nil {
		return nil, f.err
	}
	office, ok := f.offices[id]
	if !ok {
		return nil, nil
	}
	return &office, nil
}

func (f *fakeOfficeRepo) FindAll(db *gorm.DB) ([]entity.Office, error) {
	if f.err != nil {
		return nil, f.err
	}
	offices := make([]entity.Office, 0, len(f.offices))
	for id := 1; id <= f.nextID; id++ {
		if office, ok := f.offices[id]; ok {
			offices = append(offices, office)
		}
	}
	return offices, nil
}

type fakeReferralRepo struct {
	referrals map[int]entity.Referral
	nextID    int
	err       error

	// canned results and captured arguments for the read paths
	approved      []entity.Referral
	searchResults []entity.Referral
	withAddress   []entity.Referral
	lastFilter    *entity.ReferralFilter
	lastSearch    string
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{referrals: make(map[int]entity.Referral)}
}

func (f *fakeReferralRepo) Create(db *gorm.DB, referral *entity.Referral) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	referral.ID = f.nextID
	referral.CreatedAt = time.Now()
	referral.UpdatedAt = referral.CreatedAt
	f.referrals[referral.ID] = *referral
	return nil
}

func (f *fakeReferralRepo) FindByID(db *gorm.DB, id int) (*entity.Referral, error) {
	if f.err != nil {
		return nil, f.err
	}
	referral, ok := f.referrals[id]
	if !ok {
		return nil, nil
	}
	return &referral, nil
}

func (f *fakeReferralRepo) FindPending(db *gorm.DB) ([]entity.Referral, error) {
	if f.err != nil {
		return nil, f.err
	}
	var pending []entity.Referral
	for id := f.nextID; id >= 1; id-- {
		if referral, ok := f.referrals[id]; ok && referral.IsPending() {
			pending = append(pending, referral)
		}
	}
	return pending, nil
}

func (f *fakeReferralRepo) FindApproved(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.approved, nil
}

func (f *fakeReferralRepo) SearchApproved(db *gorm.DB, term string) ([]entity.Referral, error) {
	f.lastSearch = term
	if f.err != nil {
		return nil, f.err
	}
	return f.searchResults, nil
}

func (f *fakeReferralRepo) FindApprovedWithAddress(db *gorm.DB) ([]entity.Referral, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.withAddress, nil
}

func (f *fakeReferralRepo) UpdateReview(db *gorm.DB, referral *entity.Referral) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.referrals[referral.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.ApprovalStatus = referral.ApprovalStatus
	stored.ApprovedBy = referral.ApprovedBy
	stored.UpdatedAt = time.Now()
	f.referrals[referral.ID] = stored
	referral.UpdatedAt = stored.UpdatedAt
	return nil
}

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) LogOfficeCreated(tx *gorm.DB, office *entity.Office) error {
	f.actions = append(f.actions, entity.AuditActionOfficeCreate)
	return nil
}

func (f *fakeAuditService) LogReferralSubmitted(tx *gorm.DB, referral *entity.Referral) error {
	f.actions = append(f.actions, entity.AuditActionReferralSubmit)
	return nil
}

func (f *fakeAuditService) LogReviewDecision(tx *gorm.DB, referral *entity.Referral, previous entity.ApprovalStatus) error {
	if referral.ApprovalStatus == entity.ApprovalStatusRejected {
		f.actions = append(f.actions, entity.AuditActionReferralReject)
	} else {
		f.actions = append(f.actions, entity.AuditActionReferralApprove)
	}
	return nil
}

type fakeDirectoryCache struct {
	store       map[string][]entity.Referral
	invalidated int
}

func newFakeDirectoryCache() *fakeDirectoryCache {
	return &fakeDirectoryCache{store: make(map[string][]entity.Referral)}
}

func (f *fakeDirectoryCache) GetReferrals(ctx context.Context, key string) ([]entity.Referral, bool) {
	referrals, ok := f.store[key]
	return referrals, ok
}

func (f *fakeDirectoryCache) SetReferrals(ctx context.Context, key string, referrals []entity.Referral) {
	f.store[key] = referrals
}

func (f *fakeDirectoryCache) Invalidate(ctx context.Context) {
	f.invalidated++
	f.store = make(map[string][]entity.Referral)
}
