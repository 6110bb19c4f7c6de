package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// managementHandler handles HTTP requests for the management roster.
type managementHandler struct {
	managementService portssvc.ManagementSvcFacade
}

func newManagementHandler(ms portssvc.ManagementSvcFacade) *managementHandler {
	return &managementHandler{managementService: ms}
}

func registerManagementRoutes(rg *gin.RouterGroup, managementService portssvc.ManagementSvcFacade) {
	h := newManagementHandler(managementService)

	managements := rg.Group("/managements")
	{
		managements.POST("", h.createManagement)
		managements.GET("", h.listManagements)
		managements.GET("/:id", h.getManagementByID)
		managements.PUT("/:id", h.updateManagement)
		managements.DELETE("/:id", middleware.RequireAdmin(), h.deleteManagement)
		managements.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteManagements)
	}
}

// createManagement godoc
// @Summary Create a roster entry
// @Description Assigns a registered user to a position for a period.
// @Tags managements
// @Accept json
// @Produce json
// @Param management body dto.CreateManagementRequest true "Roster entry details"
// @Success 201 {object} dto.ManagementResponse
// @Failure 400 {object} ErrorResponse "Referenced user does not exist"
// @Security BearerAuth
// @Router /managements [post]
func (h *managementHandler) createManagement(c *gin.Context) {
	var req dto.CreateManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	management, err := h.managementService.CreateManagement(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create roster entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToManagementResponse(management))
}

// getManagementByID godoc
// @Summary Get a roster entry
// @Tags managements
// @Produce json
// @Param id path string true "Management ID"
// @Success 200 {object} dto.ManagementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /managements/{id} [get]
func (h *managementHandler) getManagementByID(c *gin.Context) {
	management, err := h.managementService.GetManagementByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve roster entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToManagementResponse(management))
}

// listManagements godoc
// @Summary List roster entries
// @Tags managements
// @Produce json
// @Param periodId query string false "Period filter"
// @Param status query string false "Status filter"
// @Param search query string false "Matches position"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListManagementsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /managements [get]
func (h *managementHandler) listManagements(c *gin.Context) {
	var params dto.ListManagementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.managementService.ListManagements(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list roster entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateManagement godoc
// @Summary Update a roster entry
// @Tags managements
// @Accept json
// @Produce json
// @Param id path string true "Management ID"
// @Param management body dto.UpdateManagementRequest true "Fields to update"
// @Success 200 {object} dto.ManagementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /managements/{id} [put]
func (h *managementHandler) updateManagement(c *gin.Context) {
	var req dto.UpdateManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	management, err := h.managementService.UpdateManagement(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update roster entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToManagementResponse(management))
}

// deleteManagement godoc
// @Summary Delete a roster entry
// @Tags managements
// @Param id path string true "Management ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /managements/{id} [delete]
func (h *managementHandler) deleteManagement(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.managementService.DeleteManagement(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete roster entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteManagements godoc
// @Summary Bulk delete roster entries
// @Tags managements
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Management ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /managements/bulk-delete [post]
func (h *managementHandler) bulkDeleteManagements(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.managementService.BulkDeleteManagements(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete roster entries")
		return
	}
	c.Status(http.StatusNoContent)
}
