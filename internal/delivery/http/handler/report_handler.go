package handler

import (
	"net/http"

	"clinicdesk/internal/usecase"
	"clinicdesk/pkg/response"

	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(log *logrus.Logger, reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		log:           log,
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.ListAppointments(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list appointments: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", report)
}

func (h *ReportHandler) OutstandingDues(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.OutstandingDues(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list outstanding dues: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Outstanding dues retrieved successfully", report)
}
