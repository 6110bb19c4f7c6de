package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// galleryHandler handles HTTP requests for gallery photos.
type galleryHandler struct {
	galleryService portssvc.GallerySvcFacade
}

func newGalleryHandler(gs portssvc.GallerySvcFacade) *galleryHandler {
	return &galleryHandler{galleryService: gs}
}

func registerGalleryRoutes(rg *gin.RouterGroup, galleryService portssvc.GallerySvcFacade) {
	h := newGalleryHandler(galleryService)

	galleries := rg.Group("/galleries")
	{
		galleries.POST("", h.createGallery)
		galleries.GET("", h.listGalleries)
		galleries.GET("/:id", h.getGalleryByID)
		galleries.PUT("/:id", h.updateGallery)
		galleries.DELETE("/:id", h.deleteGallery)
		galleries.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteGalleries)
	}
}

// createGallery godoc
// @Summary Create a gallery entry
// @Description Creates a gallery entry. The photo reference is required.
// @Tags galleries
// @Accept json
// @Produce json
// @Param gallery body dto.CreateGalleryRequest true "Gallery details"
// @Success 201 {object} dto.GalleryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries [post]
func (h *galleryHandler) createGallery(c *gin.Context) {
	var req dto.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	gallery, err := h.galleryService.CreateGallery(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create gallery entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGalleryResponse(gallery))
}

// getGalleryByID godoc
// @Summary Get a gallery entry
// @Tags galleries
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GalleryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries/{id} [get]
func (h *galleryHandler) getGalleryByID(c *gin.Context) {
	gallery, err := h.galleryService.GetGalleryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve gallery entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToGalleryResponse(gallery))
}

// listGalleries godoc
// @Summary List gallery entries
// @Tags galleries
// @Produce json
// @Param eventId query string false "Owning event filter"
// @Param status query string false "Publication status filter"
// @Param search query string false "Matches title and caption"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListGalleriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries [get]
func (h *galleryHandler) listGalleries(c *gin.Context) {
	var params dto.ListGalleriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.galleryService.ListGalleries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list gallery entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateGallery godoc
// @Summary Update a gallery entry
// @Tags galleries
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param gallery body dto.UpdateGalleryRequest true "Fields to update"
// @Success 200 {object} dto.GalleryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries/{id} [put]
func (h *galleryHandler) updateGallery(c *gin.Context) {
	var req dto.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	gallery, err := h.galleryService.UpdateGallery(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update gallery entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToGalleryResponse(gallery))
}

// deleteGallery godoc
// @Summary Delete a gallery entry
// @Tags galleries
// @Param id path string true "Gallery ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries/{id} [delete]
func (h *galleryHandler) deleteGallery(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.galleryService.DeleteGallery(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete gallery entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteGalleries godoc
// @Summary Bulk delete gallery entries
// @Tags galleries
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Gallery ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /galleries/bulk-delete [post]
func (h *galleryHandler) bulkDeleteGalleries(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.galleryService.BulkDeleteGalleries(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete gallery entries")
		return
	}
	c.Status(http.StatusNoContent)
}
