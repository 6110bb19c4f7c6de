package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelStructure converts a domain Structure to a model Structure
func ToModelStructure(d domain.Structure) models.Structure {
	return models.Structure{
		StructureID:  d.StructureID,
		PositionName: d.PositionName,
		MemberName:   d.MemberName,
		ParentID:     d.ParentID,
		PeriodID:     d.PeriodID,
		DecreeFileID: d.DecreeFileID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStructure converts a model Structure to a domain Structure
func ToDomainStructure(m models.Structure) domain.Structure {
	return domain.Structure{
		StructureID:  m.StructureID,
		PositionName: m.PositionName,
		MemberName:   m.MemberName,
		ParentID:     m.ParentID,
		PeriodID:     m.PeriodID,
		DecreeFileID: m.DecreeFileID,
		Status:       domain.Status(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStructureSlice converts a slice of model Structures to domain Structures
func ToDomainStructureSlice(ms []models.Structure) []domain.Structure {
	ds := make([]domain.Structure, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStructure(m)
	}
	return ds
}

// ToModelManagement converts a domain Management to a model Management
func ToModelManagement(d domain.Management) models.Management {
	return models.Management{
		ManagementID: d.ManagementID,
		UserID:       d.UserID,
		Position:     d.Position,
		PeriodID:     d.PeriodID,
		PhotoFileID:  d.PhotoFileID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainManagement converts a model Management to a domain Management
func ToDomainManagement(m models.Management) domain.Management {
	return domain.Management{
		ManagementID: m.ManagementID,
		UserID:       m.UserID,
		Position:     m.Position,
		PeriodID:     m.PeriodID,
		PhotoFileID:  m.PhotoFileID,
		Status:       domain.Status(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainManagementSlice converts a slice of model Managements to domain Managements
func ToDomainManagementSlice(ms []models.Management) []domain.Management {
	ds := make([]domain.Management, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainManagement(m)
	}
	return ds
}

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:    d.PeriodID,
		Name:        d.Name,
		StartYear:   d.StartYear,
		EndYear:     d.EndYear,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		Name:        m.Name,
		StartYear:   m.StartYear,
		EndYear:     m.EndYear,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model Periods to domain Periods
func ToDomainPeriodSlice(ms []models.Period) []domain.Period {
	ds := make([]domain.Period, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}
