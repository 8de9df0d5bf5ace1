package entity

import (
	"fmt"
	"time"
)

// DoctorType is the closed set of specialties a referral can carry.
type DoctorType string

const (
	DoctorTypeGeneralPractitioner DoctorType = "general_practitioner"
	DoctorTypeDentist             DoctorType = "dentist"
	DoctorTypeObgyn               DoctorType = "obgyn"
	DoctorTypeCardiologist        DoctorType = "cardiologist"
	DoctorTypeDermatologist       DoctorType = "dermatologist"
	DoctorTypePsychiatrist        DoctorType = "psychiatrist"
	DoctorTypeNeurologist         DoctorType = "neurologist"
	DoctorTypeOrthopedist         DoctorType = "orthopedist"
	DoctorTypePediatrician        DoctorType = "pediatrician"
	DoctorTypeOphthalmologist     DoctorType = "ophthalmologist"
	DoctorTypeOther               DoctorType = "other"
)

func (t DoctorType) Valid() bool {
	switch t {
	case DoctorTypeGeneralPractitioner, DoctorTypeDentist, DoctorTypeObgyn,
		DoctorTypeCardiologist, DoctorTypeDermatologist, DoctorTypePsychiatrist,
		DoctorTypeNeurologist, DoctorTypeOrthopedist, DoctorTypePediatrician,
		DoctorTypeOphthalmologist, DoctorTypeOther:
		return true
	}
	return false
}

// Gender is the closed set of gender values for a referred doctor.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderNonBinary      Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay:
		return true
	}
	return false
}

// WaitTime is the closed set of typical appointment wait times.
type WaitTime string

const (
	WaitTimeSameDay     WaitTime = "same_day"
	WaitTimeWithinWeek  WaitTime = "within_week"
	WaitTimeWithinMonth WaitTime = "within_month"
	WaitTimeOverMonth   WaitTime = "over_month"
	WaitTimeUnknown     WaitTime = "unknown"
)

func (w WaitTime) Valid() bool {
	switch w {
	case WaitTimeSameDay, WaitTimeWithinWeek, WaitTimeWithinMonth,
		WaitTimeOverMonth, WaitTimeUnknown:
		return true
	}
	return false
}

// ApprovalStatus represents the moderation state of a referral
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// Referral represents a user-submitted doctor recommendation subject to
// moderation before it becomes publicly visible.
type Referral struct {
	ID                 int            `gorm:"primaryKey;autoIncrement" json:"id"`
	OfficeID           int            `gorm:"not null;index" json:"office_id"`
	DoctorName         string         `gorm:"type:text;not null" json:"doctor_name"`
	Type               DoctorType     `gorm:"type:doctor_type;not null" json:"type"`
	Address            *string        `gorm:"type:text" json:"address"`
	PhoneNumber        *string        `gorm:"type:text" json:"phone_number"`
	Gender             Gender         `gorm:"type:gender;not null" json:"gender"`
	OnlineAppointments bool           `gorm:"not null;default:false" json:"online_appointments"`
	URL                *string        `gorm:"type:text" json:"url"`
	WaitTime           WaitTime       `gorm:"type:wait_time;not null" json:"wait_time"`
	SameDayService     bool           `gorm:"not null;default:false" json:"same_day_service"`
	Comments           *string        `gorm:"type:text" json:"comments"`
	ApprovalStatus     ApprovalStatus `gorm:"type:approval_status;not null;default:'pending';index" json:"approval_status"`
	SubmittedBy        *string        `gorm:"type:text" json:"submitted_by"`
	ApprovedBy         *string        `gorm:"type:text" json:"approved_by"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Office Office `gorm:"foreignKey:OfficeID" json:"office,omitempty"`
}

func (Referral) TableName() string {
	return "doctor_referrals"
}

// IsPending checks if the referral is awaiting moderation
func (r *Referral) IsPending() bool {
	return r.ApprovalStatus == ApprovalStatusPending
}

// IsApproved checks if the referral is publicly visible
func (r *Referral) IsApproved() bool {
	return r.ApprovalStatus == ApprovalStatusApproved
}

// Review applies a moderation decision. A referral can be re-reviewed from
// any state, but it can never return to pending, so the only valid decisions
// are approved and rejected. Keeping the transition here keeps the
// "approved_by set iff not pending" invariant in one place.
func (r *Referral) Review(decision ApprovalStatus, reviewer string) error {
	if decision != ApprovalStatusApproved && decision != ApprovalStatusRejected {
		return fmt.Errorf("invalid review decision %q", decision)
	}
	r.ApprovalStatus = decision
	r.ApprovedBy = &reviewer
	return nil
}

// NormalizeURL converts an empty-string URL into an absent one. Submission
// forms send "" when the field is left blank; the stored value is NULL.
func NormalizeURL(url *string) *string {
	if url != nil && *url == "" {
		return nil
	}
	return url
}
