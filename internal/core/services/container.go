package services

import (
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/core/ports/storage"
	"github.com/orghub/org_management_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store storage.FileStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The attachment and approval services come first since the entity
	// services depend on both.
	container.Attachment = NewAttachmentService(store, cfg.DriveFolders)
	approvals := NewApprovalService(repos.ApprovalRepo)
	container.Approval = approvals

	container.Finance = NewFinanceService(repos.FinanceRepo, container.Attachment, approvals)
	container.Letter = NewLetterService(repos.LetterRepo, container.Attachment, approvals)
	container.Document = NewDocumentService(repos.DocumentRepo, container.Attachment, approvals)
	container.Event = NewEventService(repos.EventRepo, container.Attachment, approvals)

	container.Gallery = NewGalleryService(repos.GalleryRepo, container.Attachment)
	container.Article = NewArticleService(repos.ArticleRepo, container.Attachment)
	container.Structure = NewStructureService(repos.StructureRepo, container.Attachment)
	container.Management = NewManagementService(repos.ManagementRepo, repos.UserRepo, container.Attachment)

	container.Period = NewPeriodService(repos.PeriodRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
