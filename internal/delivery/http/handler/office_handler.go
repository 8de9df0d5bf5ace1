package handler

import (
	"encoding/json"
	"net/http"

	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/usecase"
	"doctor-referral-directory/pkg/response"
	"doctor-referral-directory/pkg/validator"
)

type OfficeHandler struct {
	officeUsecase usecase.OfficeUsecase
	validator     *validator.CustomValidator
}

func NewOfficeHandler(officeUsecase usecase.OfficeUsecase, validator *validator.CustomValidator) *OfficeHandler {
	return &OfficeHandler{
		officeUsecase: officeUsecase,
		validator:     validator,
	}
}

func (h *OfficeHandler) CreateOffice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	office, err := h.officeUsecase.CreateOffice(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create office")
		return
	}

	response.Success(w, http.StatusCreated, "Office created successfully", office)
}

func (h *OfficeHandler) GetOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeUsecase.GetAllOffices(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get offices")
		return
	}

	response.Success(w, http.StatusOK, "Offices retrieved successfully", offices)
}
