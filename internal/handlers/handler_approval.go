package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// approvalHandler handles HTTP requests for the approval workflow. Resolution
// authorization lives in the service: admins decide, requesters may cancel
// their own pending request.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

func newApprovalHandler(as portssvc.ApprovalSvcFacade) *approvalHandler {
	return &approvalHandler{approvalService: as}
}

func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := newApprovalHandler(approvalService)

	approvals := rg.Group("/approvals")
	{
		approvals.GET("", h.listApprovals)
		approvals.GET("/summary", h.approvalSummary)
		approvals.GET("/:id", h.getApprovalByID)
		approvals.PUT("/:id/resolve", h.resolveApproval)
	}
}

// listApprovals godoc
// @Summary List approvals
// @Description Lists approval requests. By default the history collapses to the latest request per entity.
// @Tags approvals
// @Produce json
// @Param entityType query string false "FINANCE, LETTER, DOCUMENT or EVENT"
// @Param status query string false "Approval status filter"
// @Param latestOnly query bool false "Collapse history to the latest request per entity (default true)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListApprovalsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /approvals [get]
func (h *approvalHandler) listApprovals(c *gin.Context) {
	var params dto.ListApprovalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.approvalService.ListApprovals(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list approvals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// approvalSummary godoc
// @Summary Pending approval counts
// @Description Returns the number of pending approvals grouped by entity type.
// @Tags approvals
// @Produce json
// @Success 200 {object} dto.ApprovalSummaryResponse
// @Security BearerAuth
// @Router /approvals/summary [get]
func (h *approvalHandler) approvalSummary(c *gin.Context) {
	summary, err := h.approvalService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to summarize approvals")
		return
	}
	c.JSON(http.StatusOK, dto.ApprovalSummaryResponse{Summary: summary})
}

// getApprovalByID godoc
// @Summary Get an approval
// @Tags approvals
// @Produce json
// @Param id path string true "Approval ID"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /approvals/{id} [get]
func (h *approvalHandler) getApprovalByID(c *gin.Context) {
	approval, err := h.approvalService.GetApprovalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve approval")
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalResponse(approval))
}

// resolveApproval godoc
// @Summary Resolve a pending approval
// @Description Applies a decision to a pending approval and moves the owning record in the same transaction. APPROVED, REJECTED and REVISION require the admin role; CANCELLED is also allowed for the requester.
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param decision body dto.ResolveApprovalRequest true "Decision"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Approval already resolved"
// @Security BearerAuth
// @Router /approvals/{id}/resolve [put]
func (h *approvalHandler) resolveApproval(c *gin.Context) {
	var req dto.ResolveApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	approval, err := h.approvalService.ResolveApproval(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve approval")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Approval resolved",
		slog.String("approval_id", approval.ApprovalID), slog.String("status", string(approval.Status)))
	c.JSON(http.StatusOK, dto.ToApprovalResponse(approval))
}
