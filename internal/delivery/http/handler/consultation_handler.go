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

type ConsultationHandler struct {
	log                 *logrus.Logger
	validator           *validator.CustomValidator
	consultationUsecase usecase.ConsultationUsecase
}

func NewConsultationHandler(log *logrus.Logger, validator *validator.CustomValidator, consultationUsecase usecase.ConsultationUsecase) *ConsultationHandler {
	return &ConsultationHandler{
		log:                 log,
		validator:           validator,
		consultationUsecase: consultationUsecase,
	}
}

func (h *ConsultationHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.RecordConsultation(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to record consultation: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation recorded successfully", consultation)
}

func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["id"]

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), consultationID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrConsultationNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get consultation: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}
