package dto

import "time"

// Request DTOs

type SubmitReferralRequest struct {
	OfficeID           int     `json:"office_id" validate:"required"`
	DoctorName         string  `json:"doctor_name" validate:"required"`
	Type               string  `json:"type" validate:"required,oneof=general_practitioner dentist obgyn cardiologist dermatologist psychiatrist neurologist orthopedist pediatrician ophthalmologist other"`
	Gender             string  `json:"gender" validate:"required,oneof=male female non_binary prefer_not_to_say"`
	WaitTime           string  `json:"wait_time" validate:"required,oneof=same_day within_week within_month over_month unknown"`
	Address            *string `json:"address"`
	PhoneNumber        *string `json:"phone_number"`
	URL                *string `json:"url" validate:"omitempty,url"` // Empty string allowed, stored as absent
	Comments           *string `json:"comments"`
	OnlineAppointments bool    `json:"online_appointments"`
	SameDayService     bool    `json:"same_day_service"`
	SubmittedBy        *string `json:"submitted_by"`
}

type ReviewReferralRequest struct {
	ApprovalStatus string `json:"approval_status" validate:"required,oneof=approved rejected"`
	ApprovedBy     string `json:"approved_by" validate:"required"`
}

// Response DTOs

type ReferralResponse struct {
	ID                 int       `json:"id"`
	OfficeID           int       `json:"office_id"`
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
