package converter

import (
	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
)

// OfficeToResponse converts an Office entity to OfficeResponse DTO
func OfficeToResponse(office *entity.Office) *dto.OfficeResponse {
	if office == nil {
		return nil
	}

	return &dto.OfficeResponse{
		ID:        office.ID,
		Name:      office.Name,
		CreatedAt: office.CreatedAt,
		UpdatedAt: office.UpdatedAt,
	}
}

// OfficesToResponses converts a slice of Office entities to OfficeResponse DTOs
func OfficesToResponses(offices []entity.Office) []dto.OfficeResponse {
	responses := make([]dto.OfficeResponse, len(offices))
	for i, office := range offices {
		responses[i] = dto.OfficeResponse{
			ID:        office.ID,
			Name:      office.Name,
			CreatedAt: office.CreatedAt,
			UpdatedAt: office.UpdatedAt,
		}
	}
	return responses
}
