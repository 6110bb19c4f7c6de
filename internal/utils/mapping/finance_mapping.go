package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelFinance converts a domain Finance to a model Finance
func ToModelFinance(d domain.Finance) models.Finance {
	return models.Finance{
		FinanceID:     d.FinanceID,
		Title:         d.Title,
		Description:   d.Description,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		CategoryID:    d.CategoryID,
		WorkProgramID: d.WorkProgramID,
		PeriodID:      d.PeriodID,
		ProofFileID:   d.ProofFileID,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinance converts a model Finance to a domain Finance
func ToDomainFinance(m models.Finance) domain.Finance {
	return domain.Finance{
		FinanceID:     m.FinanceID,
		Title:         m.Title,
		Description:   m.Description,
		Type:          domain.FinanceType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		CategoryID:    m.CategoryID,
		WorkProgramID: m.WorkProgramID,
		PeriodID:      m.PeriodID,
		ProofFileID:   m.ProofFileID,
		Status:        domain.Status(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinanceSlice converts a slice of model Finances to domain Finances
func ToDomainFinanceSlice(ms []models.Finance) []domain.Finance {
	ds := make([]domain.Finance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinance(m)
	}
	return ds
}
