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

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actor domain.Actor) (*domain.Period, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: managing periods requires the admin role", apperrors.ErrForbidden)
	}

	now := time.Now()
	period := domain.Period{
		PeriodID:  uuid.NewString(),
		Name:      req.Name,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
		IsActive:  false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to create period")
		return nil, err
	}

	s.LogInfo(ctx, "Period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return s.periodRepo.FindPeriodByID(ctx, periodID)
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods")
		return nil, err
	}
	if periods == nil {
		return []domain.Period{}, nil
	}
	return periods, nil
}

func (s *periodService) UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, actor domain.Actor) (*domain.Period, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: managing periods requires the admin role", apperrors.ErrForbidden)
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		period.Name = *req.Name
	}
	if req.StartYear != nil {
		period.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		period.EndYear = *req.EndYear
	}
	if period.EndYear < period.StartYear {
		return nil, fmt.Errorf("%w: end year must not be before start year", apperrors.ErrValidation)
	}
	if req.IsActive != nil {
		period.IsActive = *req.IsActive
	}
	period.LastUpdatedAt = time.Now()
	period.LastUpdatedBy = actor.UserID

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to update period", slog.String("period_id", periodID))
		return nil, err
	}
	return period, nil
}

func (s *periodService) DeletePeriod(ctx context.Context, periodID string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: managing periods requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.periodRepo.DeletePeriod(ctx, periodID); err != nil {
		s.LogError(ctx, err, "Failed to delete period", slog.String("period_id", periodID))
		return err
	}
	s.LogInfo(ctx, "Period deleted", slog.String("period_id", periodID))
	return nil
}
