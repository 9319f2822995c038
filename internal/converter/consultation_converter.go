package converter

import (
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to its response DTO.
// rejectedItems lists the prescription line names dropped during recording.
func ConsultationToResponse(consultation *entity.Consultation, rejectedItems []string) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	items := make([]dto.PrescriptionItemResponse, len(consultation.Items))
	for i, item := range consultation.Items {
		items[i] = dto.PrescriptionItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		}
	}

	return &dto.ConsultationResponse{
		ID:            consultation.ID,
		AppointmentID: consultation.AppointmentID,
		Notes:         consultation.Notes,
		Items:         items,
		ItemsTotal:    consultation.ItemsTotal(),
		RejectedItems: rejectedItems,
		CreatedAt:     consultation.CreatedAt,
	}
}
