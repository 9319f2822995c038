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

type PaymentHandler struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(log *logrus.Logger, validator *validator.CustomValidator, paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		log:            log,
		validator:      validator,
		paymentUsecase: paymentUsecase,
	}
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvoiceNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, usecase.ErrAmountMismatch):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.log.Errorf("Failed to record payment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]

	payment, err := h.paymentUsecase.GetPayment(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get payment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}
