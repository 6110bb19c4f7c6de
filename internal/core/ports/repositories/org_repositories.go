package repositories

import (
	"context"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// StructureFilter narrows a structure listing.
type StructureFilter struct {
	PeriodID string
	Status   string
	Search   string
	Limit    int
	Offset   int
}

// StructureReader defines read operations for structure data.
type StructureReader interface {
	FindStructureByID(ctx context.Context, structureID string) (*domain.Structure, error)
	ListStructures(ctx context.Context, filter StructureFilter) ([]domain.Structure, int64, error)
}

// StructureWriter defines write operations for structure data.
type StructureWriter interface {
	SaveStructure(ctx context.Context, structure domain.Structure) error
	UpdateStructure(ctx context.Context, structure domain.Structure) error
	DeleteStructure(ctx context.Context, structureID string) error
	DeleteStructures(ctx context.Context, structureIDs []string) error
}

// StructureRepositoryFacade combines all structure repository interfaces.
type StructureRepositoryFacade interface {
	StructureReader
	StructureWriter
}

// ManagementFilter narrows a management roster listing.
type ManagementFilter struct {
	PeriodID string
	Status   string
	Search   string
	Limit    int
	Offset   int
}

// ManagementReader defines read operations for roster data.
type ManagementReader interface {
	FindManagementByID(ctx context.Context, managementID string) (*domain.Management, error)
	ListManagements(ctx context.Context, filter ManagementFilter) ([]domain.Management, int64, error)
}

// ManagementWriter defines write operations for roster data.
type ManagementWriter interface {
	SaveManagement(ctx context.Context, management domain.Management) error
	UpdateManagement(ctx context.Context, management domain.Management) error
	DeleteManagement(ctx context.Context, managementID string) error
	DeleteManagements(ctx context.Context, managementIDs []string) error
}

// ManagementRepositoryFacade combines all roster repository interfaces.
type ManagementRepositoryFacade interface {
	ManagementReader
	ManagementWriter
}

// PeriodReader defines read operations for period data.
type PeriodReader interface {
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodWriter defines write operations for period data.
type PeriodWriter interface {
	SavePeriod(ctx context.Context, period domain.Period) error
	UpdatePeriod(ctx context.Context, period domain.Period) error
	DeletePeriod(ctx context.Context, periodID string) error
}

// PeriodRepositoryFacade combines all period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
