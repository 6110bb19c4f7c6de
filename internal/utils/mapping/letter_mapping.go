package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelLetter converts a domain Letter to a model Letter
func ToModelLetter(d domain.Letter) models.Letter {
	return models.Letter{
		LetterID:     d.LetterID,
		Number:       d.Number,
		Subject:      d.Subject,
		Type:         string(d.Type),
		Origin:       d.Origin,
		Destination:  d.Destination,
		Date:         d.Date,
		PeriodID:     d.PeriodID,
		LetterFileID: d.LetterFileID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLetter converts a model Letter to a domain Letter
func ToDomainLetter(m models.Letter) domain.Letter {
	return domain.Letter{
		LetterID:     m.LetterID,
		Number:       m.Number,
		Subject:      m.Subject,
		Type:         domain.LetterType(m.Type),
		Origin:       m.Origin,
		Destination:  m.Destination,
		Date:         m.Date,
		PeriodID:     m.PeriodID,
		LetterFileID: m.LetterFileID,
		Status:       domain.Status(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLetterSlice converts a slice of model Letters to domain Letters
func ToDomainLetterSlice(ms []models.Letter) []domain.Letter {
	ds := make([]domain.Letter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLetter(m)
	}
	return ds
}
