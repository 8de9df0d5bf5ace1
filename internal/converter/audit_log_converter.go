package converter

import (
	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        auditLog.ID,
		Actor:     auditLog.Actor,
		Action:    auditLog.Action,
		Metadata:  auditLog.Metadata,
		CreatedAt: auditLog.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, auditLog := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        auditLog.ID,
			Actor:     auditLog.Actor,
			Action:    auditLog.Action,
			Metadata:  auditLog.Metadata,
			CreatedAt: auditLog.CreatedAt,
		}
	}
	return responses
}
