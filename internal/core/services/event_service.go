package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
)

type eventService struct {
	BaseService
	eventRepo   portsrepo.EventRepositoryFacade
	attachments portssvc.AttachmentSvcFacade
	submitter   portssvc.ApprovalSubmitter
}

// NewEventService creates a new event service.
func NewEventService(
	eventRepo portsrepo.EventRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
	submitter portssvc.ApprovalSubmitter,
) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:   eventRepo,
		attachments: attachments,
		submitter:   submitter,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, actor domain.Actor) (*domain.Event, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	thumbID, err := normalizeRef(strVal(req.ThumbnailFileID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:           uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		ResponsibleUserID: strVal(req.ResponsibleUserID),
		PeriodID:          strVal(req.PeriodID),
		ThumbnailFileID:   thumbID,
		Status:            domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to create event")
		return nil, err
	}

	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID))
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

func (s *eventService) ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error) {
	filter := portsrepo.EventFilter{
		Status:    params.Status,
		PeriodID:  params.PeriodID,
		Search:    params.Search,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     params.Limit,
		Offset:    params.Offset(),
	}
	events, total, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, err
	}
	return dto.ToListEventsResponse(events, params.Page, params.Limit, total), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, actor domain.Actor) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(event.Status, actor); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	if req.ResponsibleUserID != nil {
		event.ResponsibleUserID = *req.ResponsibleUserID
	}
	if req.PeriodID != nil {
		event.PeriodID = *req.PeriodID
	}
	// Scheduling statuses (ONGOING, COMPLETED, CANCELLED, POSTPONED) are set
	// directly; approval statuses only ever move through the workflow.
	if req.Status != nil {
		event.Status = domain.Status(*req.Status)
	}

	oldThumb := event.ThumbnailFileID
	if req.RemoveThumbnail {
		event.ThumbnailFileID = ""
	} else if req.ThumbnailFileID != nil {
		thumbID, err := normalizeRef(*req.ThumbnailFileID)
		if err != nil {
			return nil, err
		}
		event.ThumbnailFileID = thumbID
	}

	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = actor.UserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}

	if oldThumb != "" && oldThumb != event.ThumbnailFileID {
		if err := s.attachments.Remove(ctx, oldThumb); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded thumbnail",
				slog.String("event_id", eventID), slog.String("file_id", oldThumb))
		}
	}

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string, actor domain.Actor) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the creator or an admin may delete this record", apperrors.ErrForbidden)
	}
	if err := checkEditable(event.Status, actor); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return err
	}

	if event.ThumbnailFileID != "" {
		if err := s.attachments.Remove(ctx, event.ThumbnailFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove thumbnail of deleted event",
				slog.String("event_id", eventID))
		}
	}

	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}

func (s *eventService) BulkDeleteEvents(ctx context.Context, eventIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.eventRepo.DeleteEvents(ctx, eventIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete events", slog.Int("count", len(eventIDs)))
		return err
	}
	s.LogInfo(ctx, "Events bulk deleted", slog.Int("count", len(eventIDs)))
	return nil
}

func (s *eventService) SubmitEventForApproval(ctx context.Context, eventID string, actor domain.Actor) (*domain.Approval, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(event.Status); err != nil {
		return nil, err
	}
	return s.submitter.Submit(ctx, domain.EntityEvent, eventID, actor)
}
