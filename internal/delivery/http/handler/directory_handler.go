package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"doctor-referral-directory/internal/domain/entity"
	"doctor-referral-directory/internal/usecase"
	"doctor-referral-directory/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

// GetApprovedDoctors serves the public directory. Every query parameter is
// optional; supplied ones combine with AND.
func (h *DirectoryHandler) GetApprovedDoctors(w http.ResponseWriter, r *http.Request) {
	filter, err := parseDirectoryFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	entries, err := h.directoryUsecase.QueryDirectory(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, err, "Failed to query directory")
		return
	}

	response.Success(w, http.StatusOK, "Directory retrieved successfully", entries)
}

func (h *DirectoryHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	entries, err := h.directoryUsecase.SearchDirectory(r.Context(), term)
	if err != nil {
		writeUsecaseError(w, err, "Failed to search directory")
		return
	}

	response.Success(w, http.StatusOK, "Search results retrieved successfully", entries)
}

func (h *DirectoryHandler) GetDoctorsWithLocations(w http.ResponseWriter, r *http.Request) {
	entries, err := h.directoryUsecase.ListWithLocations(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctors with locations")
		return
	}

	response.Success(w, http.StatusOK, "Doctors with locations retrieved successfully", entries)
}

func parseDirectoryFilter(r *http.Request) (*entity.ReferralFilter, error) {
	query := r.URL.Query()
	filter := &entity.ReferralFilter{
		DoctorName: query.Get("doctor_name"),
		Search:     query.Get("search"),
	}

	if v := query.Get("office_id"); v != "" {
		officeID, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid office_id %q", v)
		}
		filter.OfficeID = &officeID
	}

	if v := query.Get("type"); v != "" {
		doctorType := entity.DoctorType(v)
		if !doctorType.Valid() {
			return nil, fmt.Errorf("invalid type %q", v)
		}
		filter.Type = doctorType
	}

	if v := query.Get("gender"); v != "" {
		gender := entity.Gender(v)
		if !gender.Valid() {
			return nil, fmt.Errorf("invalid gender %q", v)
		}
		filter.Gender = gender
	}

	if v := query.Get("wait_time"); v != "" {
		waitTime := entity.WaitTime(v)
		if !waitTime.Valid() {
			return nil, fmt.Errorf("invalid wait_time %q", v)
		}
		filter.WaitTime = waitTime
	}

	if v := query.Get("online_appointments"); v != "" {
		onlineAppointments, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid online_appointments %q", v)
		}
		filter.OnlineAppointments = &onlineAppointments
	}

	if v := query.Get("same_day_service"); v != "" {
		sameDayService, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid same_day_service %q", v)
		}
		filter.SameDayService = &sameDayService
	}

	return filter, nil
}
