package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// articleHandler handles HTTP requests for published articles.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{articleService: as}
}

func registerArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.GET("/:id", h.getArticleByID)
		articles.GET("/slug/:slug", h.getArticleBySlug)
		articles.PUT("/:id", h.updateArticle)
		articles.DELETE("/:id", h.deleteArticle)
		articles.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteArticles)
	}
}

// createArticle godoc
// @Summary Create an article
// @Description Creates an article. The slug is derived from the title and deduplicated automatically.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create article")
		return
	}
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// getArticleByID godoc
// @Summary Get an article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [get]
func (h *articleHandler) getArticleByID(c *gin.Context) {
	article, err := h.articleService.GetArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// getArticleBySlug godoc
// @Summary Get an article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/slug/{slug} [get]
func (h *articleHandler) getArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Param status query string false "Publication status filter"
// @Param authorId query string false "Author filter"
// @Param search query string false "Matches title and content"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListArticlesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	var params dto.ListArticlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.articleService.ListArticles(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list articles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateArticle godoc
// @Summary Update an article
// @Description Updates an article. Only the author or an admin may edit; a title change regenerates the slug.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.ArticleResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *articleHandler) updateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Param id path string true "Article ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete article")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteArticles godoc
// @Summary Bulk delete articles
// @Tags articles
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Article ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/bulk-delete [post]
func (h *articleHandler) bulkDeleteArticles(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.articleService.BulkDeleteArticles(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete articles")
		return
	}
	c.Status(http.StatusNoContent)
}
