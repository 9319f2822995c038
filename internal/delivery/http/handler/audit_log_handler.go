package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinicdesk/internal/usecase"
	"clinicdesk/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	log             *logrus.Logger
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(log *logrus.Logger, auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		log:             log,
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list audit logs: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log id", nil)
		return
	}

	entry, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuditLogNotFound):
			response.NotFound(w, err.Error())
		default:
			h.log.Errorf("Failed to get audit log: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", entry)
}
