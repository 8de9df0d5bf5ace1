package dto

import "time"

// Request DTOs

type CreateOfficeRequest struct {
	Name string `json:"name" validate:"required"`
}

// Response DTOs

type OfficeResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OfficeListResponse struct {
	Offices []OfficeResponse `json:"offices"`
	Total   int              `json:"total"`
}
