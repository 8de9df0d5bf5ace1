package usecase

import (
	"context"
	"strings"

	"doctor-referral-directory/internal/converter"
	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
	"doctor-referral-directory/internal/domain/repository"
	"doctor-referral-directory/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OfficeUsecase interface {
	CreateOffice(ctx context.Context, req *dto.CreateOfficeRequest) (*dto.OfficeResponse, error)
	GetAllOffices(ctx context.Context) (*dto.OfficeListResponse, error)
}

type officeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	officeRepo   repository.OfficeRepository
	auditService service.AuditService
}

func NewOfficeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	officeRepo repository.OfficeRepository,
	auditService service.AuditService,
) OfficeUsecase {
	return &officeUsecase{
		db:           db,
		log:          log,
		officeRepo:   officeRepo,
		auditService: auditService,
	}
}

func (u *officeUsecase) CreateOffice(ctx context.Context, req *dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Message: "office name is required"}
	}

	office := &entity.Office{Name: name}

	db := u.db.WithContext(ctx)
	if err := u.officeRepo.Create(db, office); err != nil {
		u.log.Warnf("Failed to create office: %+v", err)
		return nil, &StoreError{Op: "create office", Err: err}
	}

	u.auditService.LogOfficeCreated(db, office)

	return converter.OfficeToResponse(office), nil
}

func (u *officeUsecase) GetAllOffices(ctx context.Context) (*dto.OfficeListResponse, error) {
	offices, err := u.officeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all offices: %+v", err)
		return nil, &StoreError{Op: "list offices", Err: err}
	}

	return &dto.OfficeListResponse{
		Offices: converter.OfficesToResponses(offices),
		Total:   len(offices),
	}, nil
}
