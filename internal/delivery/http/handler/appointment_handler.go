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

type AppointmentHandler struct {
	log               *logrus.Logger
	validator         *validator.CustomValidator
	schedulingUsecase usecase.SchedulingUsecase
}

func NewAppointmentHandler(log *logrus.Logger, validator *validator.CustomValidator, schedulingUsecase usecase.SchedulingUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		log:               log,
		validator:         validator,
		schedulingUsecase: schedulingUsecase,
	}
}

func (h *AppointmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.schedulingUsecase.ScheduleAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSlotFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrPatientNotFound), errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrSlotConflict):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			h.log.Errorf("Failed to schedule appointment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	appointment, err := h.schedulingUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrAppointmentNotScheduled):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			h.log.Errorf("Failed to cancel appointment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	appointment, err := h.schedulingUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get appointment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}
