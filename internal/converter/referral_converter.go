package converter

import (
	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/domain/entity"
)

// ReferralToResponse converts a Referral entity to ReferralResponse DTO
func ReferralToResponse(referral *entity.Referral) *dto.ReferralResponse {
	if referral == nil {
		return nil
	}

	return &dto.ReferralResponse{
		ID:                 referral.ID,
		OfficeID:           referral.OfficeID,
		DoctorName:         referral.DoctorName,
		Type:               string(referral.Type),
		Address:            referral.Address,
		PhoneNumber:        referral.PhoneNumber,
		Gender:             string(referral.Gender),
		OnlineAppointments: referral.OnlineAppointments,
		URL:                referral.URL,
		WaitTime:           string(referral.WaitTime),
		SameDayService:     referral.SameDayService,
		Comments:           referral.Comments,
		ApprovalStatus:     string(referral.ApprovalStatus),
		SubmittedBy:        referral.SubmittedBy,
		ApprovedBy:         referral.ApprovedBy,
		CreatedAt:          referral.CreatedAt,
		UpdatedAt:          referral.UpdatedAt,
	}
}

// ReferralToDirectoryEntry converts a Referral with its preloaded Office
// into the joined directory projection.
func ReferralToDirectoryEntry(referral *entity.Referral) dto.DirectoryEntryResponse {
	return dto.DirectoryEntryResponse{
		ID:                 referral.ID,
		OfficeID:           referral.OfficeID,
		OfficeName:         referral.Office.Name,
		DoctorName:         referral.DoctorName,
		Type:               string(referral.Type),
		Address:            referral.Address,
		PhoneNumber:        referral.PhoneNumber,
		Gender:             string(referral.Gender),
		OnlineAppointments: referral.OnlineAppointments,
		URL:                referral.URL,
		WaitTime:           string(referral.WaitTime),
		SameDayService:     referral.SameDayService,
		Comments:           referral.Comments,
		ApprovalStatus:     string(referral.ApprovalStatus),
		SubmittedBy:        referral.SubmittedBy,
		ApprovedBy:         referral.ApprovedBy,
		CreatedAt:          referral.CreatedAt,
		UpdatedAt:          referral.UpdatedAt,
	}
}

// ReferralsToDirectoryEntries converts a slice of referrals to directory entries
func ReferralsToDirectoryEntries(referrals []entity.Referral) []dto.DirectoryEntryResponse {
	entries := make([]dto.DirectoryEntryResponse, len(referrals))
	for i := range referrals {
		entries[i] = ReferralToDirectoryEntry(&referrals[i])
	}
	return entries
}
