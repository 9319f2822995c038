package http

import (
	"net/http"

	"clinicdesk/internal/delivery/http/handler"
	"clinicdesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	PatientHandler      *handler.PatientHandler
	DoctorHandler       *handler.DoctorHandler
	AppointmentHandler  *handler.AppointmentHandler
	ConsultationHandler *handler.ConsultationHandler
	InvoiceHandler      *handler.InvoiceHandler
	PaymentHandler      *handler.PaymentHandler
	ReportHandler       *handler.ReportHandler
	AuditLogHandler     *handler.AuditLogHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// NewRouter wires all routes under /api/v1. Everything except login and
// refresh requires a valid access token; staff registration and the audit
// trail are admin only.
func NewRouter(cfg *RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", cfg.AuthHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated
	protected := api.NewRoute().Subrouter()
	protected.Use(cfg.AuthMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", cfg.AuthHandler.Me).Methods(http.MethodGet)

	protected.HandleFunc("/patients", cfg.PatientHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/patients", cfg.PatientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", cfg.PatientHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/doctors", cfg.DoctorHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", cfg.DoctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", cfg.DoctorHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", cfg.AppointmentHandler.Schedule).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", cfg.AppointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", cfg.AppointmentHandler.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/consultations", cfg.ConsultationHandler.Record).Methods(http.MethodPost)
	protected.HandleFunc("/consultations/{id}", cfg.ConsultationHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/invoices", cfg.InvoiceHandler.Generate).Methods(http.MethodPost)
	protected.HandleFunc("/invoices/{id}", cfg.InvoiceHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/payments", cfg.PaymentHandler.Record).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}", cfg.PaymentHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/reports/appointments", cfg.ReportHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/reports/outstanding-dues", cfg.ReportHandler.OutstandingDues).Methods(http.MethodGet)

	// Admin only
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/staff", cfg.AuthHandler.RegisterStaff).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", cfg.AuditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", cfg.AuditLogHandler.Get).Methods(http.MethodGet)

	return r
}
