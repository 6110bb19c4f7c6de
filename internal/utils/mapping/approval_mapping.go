package mapping

import (
	"database/sql"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelApproval converts a domain Approval to a model Approval
func ToModelApproval(d domain.Approval) models.Approval {
	m := models.Approval{
		ApprovalID: d.ApprovalID,
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID,
		UserID:     d.UserID,
		Status:     string(d.Status),
		Note:       d.Note,
		CreatedAt:  d.CreatedAt,
	}
	if d.ResolvedBy != "" {
		m.ResolvedBy = sql.NullString{String: d.ResolvedBy, Valid: true}
	}
	if d.ResolvedAt != nil {
		m.ResolvedAt = sql.NullTime{Time: *d.ResolvedAt, Valid: true}
	}
	return m
}

// ToDomainApproval converts a model Approval to a domain Approval
func ToDomainApproval(m models.Approval) domain.Approval {
	d := domain.Approval{
		ApprovalID: m.ApprovalID,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		UserID:     m.UserID,
		Status:     domain.ApprovalStatus(m.Status),
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
	if m.ResolvedBy.Valid {
		d.ResolvedBy = m.ResolvedBy.String
	}
	if m.ResolvedAt.Valid {
		t := m.ResolvedAt.Time
		d.ResolvedAt = &t
	}
	return d
}

// ToDomainApprovalSlice converts a slice of model Approvals to domain Approvals
func ToDomainApprovalSlice(ms []models.Approval) []domain.Approval {
	ds := make([]domain.Approval, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApproval(m)
	}
	return ds
}
