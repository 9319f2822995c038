package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/usecase"
	"clinicdesk/pkg/response"
	"clinicdesk/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type InvoiceHandler struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	billingUsecase usecase.BillingUsecase
}

func NewInvoiceHandler(log *logrus.Logger, validator *validator.CustomValidator, billingUsecase usecase.BillingUsecase) *InvoiceHandler {
	return &InvoiceHandler{
		log:            log,
		validator:      validator,
		billingUsecase: billingUsecase,
	}
}

func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.GenerateInvoice(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTaxRate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrConsultationNotFound),
			errors.Is(err, usecase.ErrAppointmentNotFound),
			errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrDuplicateInvoice):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			h.log.Errorf("Failed to generate invoice: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice generated successfully", invoice)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["id"]

	invoice, err := h.billingUsecase.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvoiceNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get invoice: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}
