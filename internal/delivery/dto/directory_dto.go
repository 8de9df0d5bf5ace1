package dto

import "time"

// DirectoryEntryResponse is a referral joined with its office name. It is
// computed per request, never stored.
type DirectoryEntryResponse struct {
	ID                 int       `json:"id"`
	OfficeID           int       `json:"office_id"`
	OfficeName         string    `json:"office_name"`
	DoctorName         string    `json:"doctor_name"`
	Type               string    `json:"type"`
	Address            *string   `json:"address"`
	PhoneNumber        *string   `json:"phone_number"`
	Gender             string    `json:"gender"`
	OnlineAppointments bool      `json:"online_appointments"`
	URL                *string   `json:"url"`
	WaitTime           string    `json:"wait_time"`
	SameDayService     bool      `json:"same_day_service"`
	Comments           *string   `json:"comments"`
	ApprovalStatus     string    `json:"approval_status"`
	SubmittedBy        *string   `json:"submitted_by"`
	ApprovedBy         *string   `json:"approved_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DirectoryListResponse struct {
	Entries []DirectoryEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
}
