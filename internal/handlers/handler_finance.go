package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// financeHandler handles HTTP requests for finance records.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// registerFinanceRoutes registers routes related to finance records.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finances := rg.Group("/finances")
	{
		finances.POST("", h.createFinance)
		finances.GET("", h.listFinances)
		finances.GET("/:id", h.getFinanceByID)
		finances.PUT("/:id", h.updateFinance)
		finances.DELETE("/:id", h.deleteFinance)
		finances.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteFinances)
		finances.POST("/:id/submit", h.submitFinance)
	}
}

// createFinance godoc
// @Summary Create a finance record
// @Description Creates a new finance record in DRAFT status.
// @Tags finances
// @Accept json
// @Produce json
// @Param finance body dto.CreateFinanceRequest true "Finance details"
// @Success 201 {object} dto.FinanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances [post]
func (h *financeHandler) createFinance(c *gin.Context) {
	var req dto.CreateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	finance, err := h.financeService.CreateFinance(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create finance record")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Finance record created", slog.String("finance_id", finance.FinanceID))
	c.JSON(http.StatusCreated, dto.ToFinanceResponse(finance))
}

// getFinanceByID godoc
// @Summary Get a finance record
// @Tags finances
// @Produce json
// @Param id path string true "Finance ID"
// @Success 200 {object} dto.FinanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances/{id} [get]
func (h *financeHandler) getFinanceByID(c *gin.Context) {
	finance, err := h.financeService.GetFinanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve finance record")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinanceResponse(finance))
}

// listFinances godoc
// @Summary List finance records
// @Description Lists finance records with filtering and pagination.
// @Tags finances
// @Produce json
// @Param type query string false "INCOME or EXPENSE"
// @Param status query string false "Approval-state status filter"
// @Param search query string false "Matches title and description"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListFinancesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances [get]
func (h *financeHandler) listFinances(c *gin.Context) {
	var params dto.ListFinancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.financeService.ListFinances(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list finance records")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateFinance godoc
// @Summary Update a finance record
// @Description Updates an editable finance record. PENDING records are locked; APPROVED records require the admin role.
// @Tags finances
// @Accept json
// @Produce json
// @Param id path string true "Finance ID"
// @Param finance body dto.UpdateFinanceRequest true "Fields to update"
// @Success 200 {object} dto.FinanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Record is pending approval"
// @Security BearerAuth
// @Router /finances/{id} [put]
func (h *financeHandler) updateFinance(c *gin.Context) {
	var req dto.UpdateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	finance, err := h.financeService.UpdateFinance(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update finance record")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinanceResponse(finance))
}

// deleteFinance godoc
// @Summary Delete a finance record
// @Tags finances
// @Param id path string true "Finance ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances/{id} [delete]
func (h *financeHandler) deleteFinance(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.financeService.DeleteFinance(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete finance record")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteFinances godoc
// @Summary Bulk delete finance records
// @Description Deletes all listed records in one transaction; one missing id fails the whole batch.
// @Tags finances
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Record ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances/bulk-delete [post]
func (h *financeHandler) bulkDeleteFinances(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.financeService.BulkDeleteFinances(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete finance records")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitFinance godoc
// @Summary Submit a finance record for approval
// @Description Opens a PENDING approval and locks the record against edits.
// @Tags finances
// @Produce json
// @Param id path string true "Finance ID"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Record already pending or approved"
// @Security BearerAuth
// @Router /finances/{id}/submit [post]
func (h *financeHandler) submitFinance(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	approval, err := h.financeService.SubmitFinanceForApproval(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to submit finance record")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Finance record submitted for approval",
		slog.String("finance_id", c.Param("id")), slog.String("approval_id", approval.ApprovalID))
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}
