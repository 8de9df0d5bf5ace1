package http

import (
	"net/http"

	"doctor-referral-directory/internal/delivery/http/handler"
	"doctor-referral-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	officeHandler       *handler.OfficeHandler
	referralHandler     *handler.ReferralHandler
	directoryHandler    *handler.DirectoryHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	officeHandler *handler.OfficeHandler,
	referralHandler *handler.ReferralHandler,
	directoryHandler *handler.DirectoryHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		officeHandler:       officeHandler,
		referralHandler:     referralHandler,
		directoryHandler:    directoryHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Office registry
	api.HandleFunc("/offices", r.officeHandler.CreateOffice).Methods(http.MethodPost)
	api.HandleFunc("/offices", r.officeHandler.GetOffices).Methods(http.MethodGet)

	// Referral submission and moderation
	api.HandleFunc("/referrals", r.referralHandler.SubmitReferral).Methods(http.MethodPost)
	api.HandleFunc("/referrals/pending", r.referralHandler.GetPendingReferrals).Methods(http.MethodGet)
	api.HandleFunc("/referrals/{id}/review", r.referralHandler.ReviewReferral).Methods(http.MethodPut)

	// Public directory
	api.HandleFunc("/doctors", r.directoryHandler.GetApprovedDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/search", r.directoryHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/locations", r.directoryHandler.GetDoctorsWithLocations).Methods(http.MethodGet)

	// Moderation audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
