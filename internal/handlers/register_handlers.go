package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/orghub/org_management_app/cmd/docs"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/middleware"
	"github.com/orghub/org_management_app/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the per-entity registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerPeriodRoutes(v1, services.Period)
	registerFinanceRoutes(v1, services.Finance)
	registerLetterRoutes(v1, services.Letter)
	registerDocumentRoutes(v1, services.Document)
	registerEventRoutes(v1, services.Event)
	registerGalleryRoutes(v1, services.Gallery)
	registerArticleRoutes(v1, services.Article)
	registerStructureRoutes(v1, services.Structure)
	registerManagementRoutes(v1, services.Management)
	registerApprovalRoutes(v1, services.Approval)
	registerAttachmentRoutes(v1, services.Attachment)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
