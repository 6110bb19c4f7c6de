package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:           d.EventID,
		Title:             d.Title,
		Description:       d.Description,
		Location:          d.Location,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		ResponsibleUserID: d.ResponsibleUserID,
		PeriodID:          d.PeriodID,
		ThumbnailFileID:   d.ThumbnailFileID,
		Status:            string(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:           m.EventID,
		Title:             m.Title,
		Description:       m.Description,
		Location:          m.Location,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		ResponsibleUserID: m.ResponsibleUserID,
		PeriodID:          m.PeriodID,
		ThumbnailFileID:   m.ThumbnailFileID,
		Status:            domain.Status(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEventSlice converts a slice of model Events to domain Events
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
