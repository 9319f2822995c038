package dto

import "github.com/shopspring/decimal"

// Read-side projections.

type AppointmentListItem struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	Slot        string `json:"slot"`
	Status      string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentListItem `json:"appointments"`
	Total        int                   `json:"total"`
}

type OutstandingDueItem struct {
	InvoiceID   string          `json:"invoice_id"`
	PatientName string          `json:"patient_name"`
	DoctorName  string          `json:"doctor_name"`
	Total       decimal.Decimal `json:"total"`
}

type OutstandingDuesResponse struct {
	Dues  []OutstandingDueItem `json:"dues"`
	Total int                  `json:"total"`
}
