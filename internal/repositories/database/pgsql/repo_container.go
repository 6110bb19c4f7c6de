package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres-backed repository onto a shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		FinanceRepo:    newPgxFinanceRepository(pool),
		LetterRepo:     newPgxLetterRepository(pool),
		DocumentRepo:   newPgxDocumentRepository(pool),
		EventRepo:      newPgxEventRepository(pool),
		GalleryRepo:    newPgxGalleryRepository(pool),
		ArticleRepo:    newPgxArticleRepository(pool),
		StructureRepo:  newPgxStructureRepository(pool),
		ManagementRepo: newPgxManagementRepository(pool),
		ApprovalRepo:   newPgxApprovalRepository(pool),
		PeriodRepo:     newPgxPeriodRepository(pool),
		UserRepo:       newPgxUserRepository(pool),
	}
}
