package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Finance    FinanceSvcFacade
	Letter     LetterSvcFacade
	Document   DocumentSvcFacade
	Event      EventSvcFacade
	Gallery    GallerySvcFacade
	Article    ArticleSvcFacade
	Structure  StructureSvcFacade
	Management ManagementSvcFacade
	Approval   ApprovalSvcFacade
	Attachment AttachmentSvcFacade
	Period     PeriodSvcFacade
	User       UserSvcFacade
}
