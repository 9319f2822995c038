package converter

import (
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity to its response DTO.
// Subtotal, tax and total are recomputed from the snapshot on every call.
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	return &dto.InvoiceResponse{
		ID:              invoice.ID,
		ConsultationID:  invoice.ConsultationID,
		ConsultationFee: invoice.ConsultationFee,
		ItemsTotal:      invoice.ItemsTotal,
		TaxRate:         invoice.TaxRate,
		Subtotal:        invoice.Subtotal(),
		Tax:             invoice.Tax(),
		Total:           invoice.Total(),
		Closed:          invoice.Closed,
		CreatedAt:       invoice.CreatedAt,
	}
}
