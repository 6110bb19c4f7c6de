package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// periodHandler handles HTTP requests for organizational periods. Reads are
// open to every authenticated user; writes are admin operations.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps}
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.GET("", h.listPeriods)
		periods.GET("/:id", h.getPeriodByID)
		periods.POST("", middleware.RequireAdmin(), h.createPeriod)
		periods.PUT("/:id", middleware.RequireAdmin(), h.updatePeriod)
		periods.DELETE("/:id", middleware.RequireAdmin(), h.deletePeriod)
	}
}

// createPeriod godoc
// @Summary Create a period
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// getPeriodByID godoc
// @Summary Get a period
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{id} [get]
func (h *periodHandler) getPeriodByID(c *gin.Context) {
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List periods
// @Tags periods
// @Produce json
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodsResponse(periods))
}

// updatePeriod godoc
// @Summary Update a period
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID"
// @Param period body dto.UpdatePeriodRequest true "Fields to update"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse "End year precedes start year"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{id} [put]
func (h *periodHandler) updatePeriod(c *gin.Context) {
	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	period, err := h.periodService.UpdatePeriod(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// deletePeriod godoc
// @Summary Delete a period
// @Tags periods
// @Param id path string true "Period ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{id} [delete]
func (h *periodHandler) deletePeriod(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.periodService.DeletePeriod(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete period")
		return
	}
	c.Status(http.StatusNoContent)
}
