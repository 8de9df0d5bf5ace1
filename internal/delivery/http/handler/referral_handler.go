package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/usecase"
	"doctor-referral-directory/pkg/response"
	"doctor-referral-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type ReferralHandler struct {
	referralUsecase usecase.ReferralUsecase
	validator       *validator.CustomValidator
}

func NewReferralHandler(referralUsecase usecase.ReferralUsecase, validator *validator.CustomValidator) *ReferralHandler {
	return &ReferralHandler{
		referralUsecase: referralUsecase,
		validator:       validator,
	}
}

func (h *ReferralHandler) SubmitReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.SubmitReferral(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to submit referral")
		return
	}

	response.Success(w, http.StatusCreated, "Referral submitted successfully", referral)
}

func (h *ReferralHandler) ReviewReferral(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	referralID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	var req dto.ReviewReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.ReviewReferral(r.Context(), referralID, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to review referral")
		return
	}

	response.Success(w, http.StatusOK, "Referral reviewed successfully", referral)
}

func (h *ReferralHandler) GetPendingReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.referralUsecase.GetPendingReferrals(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pending referrals")
		return
	}

	response.Success(w, http.StatusOK, "Pending referrals retrieved successfully", referrals)
}
