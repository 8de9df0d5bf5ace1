package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-referral-directory/internal/delivery/dto"
	"doctor-referral-directory/internal/delivery/http/handler"
	"doctor-referral-directory/internal/usecase"
	"doctor-referral-directory/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSubmission = `{
	"office_id": 1,
	"doctor_name": "Dr. Jane Smith",
	"type": "general_practitioner",
	"gender": "female",
	"wait_time": "within_week",
	"online_appointments": true,
	"same_day_service": false
}`

func TestReferralHandler_SubmitReferral(t *testing.T) {
	t.Run("submits a referral", func(t *testing.T) {
		u := &fakeReferralUsecase{submitResp: &dto.ReferralResponse{ID: 1, ApprovalStatus: "pending"}}
		h := handler.NewReferralHandler(u, validator.NewValidator())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/referrals", strings.NewReader(validSubmission))
		w := httptest.NewRecorder()
		h.SubmitReferral(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, u.lastSubmit)
		assert.Equal(t, "Dr. Jane Smith", u.lastSubmit.DoctorName)
	})

	t.Run("rejects an unknown specialty", func(t *testing.T) {
		h := handler.NewReferralHandler(&fakeReferralUsecase{}, validator.NewValidator())

		body := strings.Replace(validSubmission, "general_practitioner", "astrologer", 1)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/referrals", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.SubmitReferral(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed url", func(t *testing.T) {
		h := handler.NewReferralHandler(&fakeReferralUsecase{}, validator.NewValidator())

		body := strings.Replace(validSubmission, `"office_id": 1,`, `"office_id": 1, "url": "not a url",`, 1)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/referrals", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.SubmitReferral(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown office becomes 404 with the id", func(t *testing.T) {
		u := &fakeReferralUsecase{submitErr: &usecase.NotFoundError{Resource: "office", ID: 99999}}
		h := handler.NewReferralHandler(u, validator.NewValidator())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/referrals", strings.NewReader(validSubmission))
		w := httptest.NewRecorder()
		h.SubmitReferral(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Contains(t, resp.Message, "99999")
	})
}

func TestReferralHandler_ReviewReferral(t *testing.T) {
	reviewRequest := func(id, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/referrals/"+id+"/review", strings.NewReader(body))
		return mux.SetURLVars(req, map[string]string{"id": id})
	}

	t.Run("applies a decision", func(t *testing.T) {
		approver := "admin"
		u := &fakeReferralUsecase{reviewResp: &dto.ReferralResponse{ID: 5, ApprovalStatus: "approved", ApprovedBy: &approver}}
		h := handler.NewReferralHandler(u, validator.NewValidator())

		w := httptest.NewRecorder()
		h.ReviewReferral(w, reviewRequest("5", `{"approval_status":"approved","approved_by":"admin"}`))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, u.lastReviewID)
		require.NotNil(t, u.lastReview)
		assert.Equal(t, "approved", u.lastReview.ApprovalStatus)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		h := handler.NewReferralHandler(&fakeReferralUsecase{}, validator.NewValidator())

		w := httptest.NewRecorder()
		h.ReviewReferral(w, reviewRequest("abc", `{"approval_status":"approved","approved_by":"admin"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a pending decision at the boundary", func(t *testing.T) {
		h := handler.NewReferralHandler(&fakeReferralUsecase{}, validator.NewValidator())

		w := httptest.NewRecorder()
		h.ReviewReferral(w, reviewRequest("5", `{"approval_status":"pending","approved_by":"admin"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing referral becomes 404 with the id", func(t *testing.T) {
		u := &fakeReferralUsecase{reviewErr: &usecase.NotFoundError{Resource: "referral", ID: 424242}}
		h := handler.NewReferralHandler(u, validator.NewValidator())

		w := httptest.NewRecorder()
		h.ReviewReferral(w, reviewRequest("424242", `{"approval_status":"approved","approved_by":"admin"}`))

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Contains(t, resp.Message, "424242")
	})
}

func TestReferralHandler_GetPendingReferrals(t *testing.T) {
	u := &fakeReferralUsecase{pendingResp: &dto.DirectoryListResponse{
		Entries: []dto.DirectoryEntryResponse{{ID: 1, OfficeName: "Clinic", ApprovalStatus: "pending"}},
		Total:   1,
	}}
	h := handler.NewReferralHandler(u, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/referrals/pending", nil)
	w := httptest.NewRecorder()
	h.GetPendingReferrals(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}
