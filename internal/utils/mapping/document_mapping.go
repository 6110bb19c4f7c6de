package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:     d.DocumentID,
		Title:          d.Title,
		Description:    d.Description,
		Category:       string(d.Category),
		PeriodID:       d.PeriodID,
		DocumentFileID: d.DocumentFileID,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:     m.DocumentID,
		Title:          m.Title,
		Description:    m.Description,
		Category:       domain.DocumentCategory(m.Category),
		PeriodID:       m.PeriodID,
		DocumentFileID: m.DocumentFileID,
		Status:         domain.Status(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
