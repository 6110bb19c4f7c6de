package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FinanceRepo    FinanceRepositoryFacade
	LetterRepo     LetterRepositoryFacade
	DocumentRepo   DocumentRepositoryFacade
	EventRepo      EventRepositoryFacade
	GalleryRepo    GalleryRepositoryFacade
	ArticleRepo    ArticleRepositoryFacade
	StructureRepo  StructureRepositoryFacade
	ManagementRepo ManagementRepositoryFacade
	ApprovalRepo   ApprovalRepositoryFacade
	PeriodRepo     PeriodRepositoryFacade
	UserRepo       UserRepositoryFacade
}
