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

type PatientHandler struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(log *logrus.Logger, validator *validator.CustomValidator, patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		log:            log,
		validator:      validator,
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateOfBirth):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.log.Errorf("Failed to register patient: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["id"]

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get patient: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list patients: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
