package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// structureHandler handles HTTP requests for the organization chart.
type structureHandler struct {
	structureService portssvc.StructureSvcFacade
}

func newStructureHandler(ss portssvc.StructureSvcFacade) *structureHandler {
	return &structureHandler{structureService: ss}
}

func registerStructureRoutes(rg *gin.RouterGroup, structureService portssvc.StructureSvcFacade) {
	h := newStructureHandler(structureService)

	structures := rg.Group("/structures")
	{
		structures.POST("", h.createStructure)
		structures.GET("", h.listStructures)
		structures.GET("/:id", h.getStructureByID)
		structures.PUT("/:id", h.updateStructure)
		structures.DELETE("/:id", middleware.RequireAdmin(), h.deleteStructure)
		structures.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteStructures)
	}
}

// createStructure godoc
// @Summary Create a structure node
// @Description Creates an organization chart node. The parent node must exist when given.
// @Tags structures
// @Accept json
// @Produce json
// @Param structure body dto.CreateStructureRequest true "Node details"
// @Success 201 {object} dto.StructureResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures [post]
func (h *structureHandler) createStructure(c *gin.Context) {
	var req dto.CreateStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	structure, err := h.structureService.CreateStructure(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create structure node")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStructureResponse(structure))
}

// getStructureByID godoc
// @Summary Get a structure node
// @Tags structures
// @Produce json
// @Param id path string true "Structure ID"
// @Success 200 {object} dto.StructureResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures/{id} [get]
func (h *structureHandler) getStructureByID(c *gin.Context) {
	structure, err := h.structureService.GetStructureByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve structure node")
		return
	}
	c.JSON(http.StatusOK, dto.ToStructureResponse(structure))
}

// listStructures godoc
// @Summary List structure nodes
// @Tags structures
// @Produce json
// @Param periodId query string false "Period filter"
// @Param status query string false "Status filter"
// @Param search query string false "Matches position and member name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListStructuresResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures [get]
func (h *structureHandler) listStructures(c *gin.Context) {
	var params dto.ListStructuresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.structureService.ListStructures(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list structure nodes")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateStructure godoc
// @Summary Update a structure node
// @Tags structures
// @Accept json
// @Produce json
// @Param id path string true "Structure ID"
// @Param structure body dto.UpdateStructureRequest true "Fields to update"
// @Success 200 {object} dto.StructureResponse
// @Failure 400 {object} ErrorResponse "Node cannot be its own parent"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures/{id} [put]
func (h *structureHandler) updateStructure(c *gin.Context) {
	var req dto.UpdateStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	structure, err := h.structureService.UpdateStructure(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update structure node")
		return
	}
	c.JSON(http.StatusOK, dto.ToStructureResponse(structure))
}

// deleteStructure godoc
// @Summary Delete a structure node
// @Tags structures
// @Param id path string true "Structure ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures/{id} [delete]
func (h *structureHandler) deleteStructure(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.structureService.DeleteStructure(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete structure node")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteStructures godoc
// @Summary Bulk delete structure nodes
// @Tags structures
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Structure ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /structures/bulk-delete [post]
func (h *structureHandler) bulkDeleteStructures(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.structureService.BulkDeleteStructures(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete structure nodes")
		return
	}
	c.Status(http.StatusNoContent)
}
