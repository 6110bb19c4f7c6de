package repositories

import (
	"context"
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// LetterFilter narrows a letter listing. Zero values mean "no constraint".
type LetterFilter struct {
	Type      string
	Status    string
	PeriodID  string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// LetterReader defines read operations for letter data.
type LetterReader interface {
	FindLetterByID(ctx context.Context, letterID string) (*domain.Letter, error)
	ListLetters(ctx context.Context, filter LetterFilter) ([]domain.Letter, int64, error)
}

// LetterWriter defines write operations for letter data.
type LetterWriter interface {
	SaveLetter(ctx context.Context, letter domain.Letter) error
	UpdateLetter(ctx context.Context, letter domain.Letter) error
	DeleteLetter(ctx context.Context, letterID string) error
	DeleteLetters(ctx context.Context, letterIDs []string) error
}

// LetterRepositoryFacade combines all letter repository interfaces.
type LetterRepositoryFacade interface {
	LetterReader
	LetterWriter
}
