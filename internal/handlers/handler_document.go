package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// documentHandler handles HTTP requests for archived documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:id", h.getDocumentByID)
		documents.PUT("/:id", h.updateDocument)
		documents.DELETE("/:id", h.deleteDocument)
		documents.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteDocuments)
		documents.POST("/:id/submit", h.submitDocument)
	}
}

// createDocument godoc
// @Summary Create a document record
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(document))
}

// getDocumentByID godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocumentByID(c *gin.Context) {
	document, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// listDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Approval-state status filter"
// @Param search query string false "Matches title and description"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document is pending approval"
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	document, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteDocuments godoc
// @Summary Bulk delete documents
// @Tags documents
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Document ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/bulk-delete [post]
func (h *documentHandler) bulkDeleteDocuments(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.documentService.BulkDeleteDocuments(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete documents")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitDocument godoc
// @Summary Submit a document for approval
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document already pending or approved"
// @Security BearerAuth
// @Router /documents/{id}/submit [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	approval, err := h.documentService.SubmitDocumentForApproval(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to submit document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}
