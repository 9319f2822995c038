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

type DoctorHandler struct {
	log           *logrus.Logger
	validator     *validator.CustomValidator
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(log *logrus.Logger, validator *validator.CustomValidator, doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		log:           log,
		validator:     validator,
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNegativeFee):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.log.Errorf("Failed to register doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list doctors: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
