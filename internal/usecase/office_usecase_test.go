package usecase_test

import (
	"context"
	"errors"
	"testing"

	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
	"doctor-referral-directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOffice(t *testing.T) {
	t.Run("creates an office with a trimmed name", func(t *testing.T) {
		officeRepo := newFakeOfficeRepo()
		audit := &fakeAuditService{}
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), officeRepo, audit)

		office, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "  Test Medical Center  "})

		require.NoError(t, err)
		assert.Equal(t, "Test Medical Center", office.Name)
		assert.NotZero(t, office.ID)
		assert.Equal(t, []string{entity.AuditActionOfficeCreate}, audit.actions)
	})

	t.Run("rejects a whitespace-only name", func(t *testing.T) {
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), newFakeOfficeRepo(), &fakeAuditService{})

		_, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "   "})

		var validationErr *usecase.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("allows duplicate names", func(t *testing.T) {
		officeRepo := newFakeOfficeRepo()
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), officeRepo, &fakeAuditService{})

		first, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "Clinic"})
		require.NoError(t, err)
		second, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "Clinic"})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		officeRepo := newFakeOfficeRepo()
		officeRepo.err = errors.New("connection reset")
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), officeRepo, &fakeAuditService{})

		_, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "Clinic"})

		var storeErr *usecase.StoreError
		require.ErrorAs(t, err, &storeErr)
	})
}

func TestGetAllOffices(t *testing.T) {
	t.Run("returns offices in creation order", func(t *testing.T) {
		officeRepo := newFakeOfficeRepo()
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), officeRepo, &fakeAuditService{})

		_, err := u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "First"})
		require.NoError(t, err)
		_, err = u.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "Second"})
		require.NoError(t, err)

		list, err := u.GetAllOffices(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, list.Total)
		assert.Equal(t, "First", list.Offices[0].Name)
		assert.Equal(t, "Second", list.Offices[1].Name)
	})

	t.Run("empty registry is not an error", func(t *testing.T) {
		u := usecase.NewOfficeUsecase(newTestDB(t), newTestLogger(), newFakeOfficeRepo(), &fakeAuditService{})

		list, err := u.GetAllOffices(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
		assert.Empty(t, list.Offices)
	})
}
