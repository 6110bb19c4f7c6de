package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// letterHandler handles HTTP requests for letter records.
type letterHandler struct {
	letterService portssvc.LetterSvcFacade
}

func newLetterHandler(ls portssvc.LetterSvcFacade) *letterHandler {
	return &letterHandler{letterService: ls}
}

func registerLetterRoutes(rg *gin.RouterGroup, letterService portssvc.LetterSvcFacade) {
	h := newLetterHandler(letterService)

	letters := rg.Group("/letters")
	{
		letters.POST("", h.createLetter)
		letters.GET("", h.listLetters)
		letters.GET("/:id", h.getLetterByID)
		letters.PUT("/:id", h.updateLetter)
		letters.DELETE("/:id", h.deleteLetter)
		letters.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteLetters)
		letters.POST("/:id/submit", h.submitLetter)
	}
}

// createLetter godoc
// @Summary Create a letter record
// @Description Creates a new letter in DRAFT status. INCOMING letters require an origin, OUTGOING letters a destination.
// @Tags letters
// @Accept json
// @Produce json
// @Param letter body dto.CreateLetterRequest true "Letter details"
// @Success 201 {object} dto.LetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter number already registered"
// @Security BearerAuth
// @Router /letters [post]
func (h *letterHandler) createLetter(c *gin.Context) {
	var req dto.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	letter, err := h.letterService.CreateLetter(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create letter")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Letter created", slog.String("letter_id", letter.LetterID))
	c.JSON(http.StatusCreated, dto.ToLetterResponse(letter))
}

// getLetterByID godoc
// @Summary Get a letter
// @Tags letters
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} dto.LetterResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /letters/{id} [get]
func (h *letterHandler) getLetterByID(c *gin.Context) {
	letter, err := h.letterService.GetLetterByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve letter")
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterResponse(letter))
}

// listLetters godoc
// @Summary List letters
// @Tags letters
// @Produce json
// @Param direction query string false "INCOMING or OUTGOING"
// @Param status query string false "Approval-state status filter"
// @Param search query string false "Matches number and subject"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListLettersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /letters [get]
func (h *letterHandler) listLetters(c *gin.Context) {
	var params dto.ListLettersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.letterService.ListLetters(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list letters")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateLetter godoc
// @Summary Update a letter
// @Tags letters
// @Accept json
// @Produce json
// @Param id path string true "Letter ID"
// @Param letter body dto.UpdateLetterRequest true "Fields to update"
// @Success 200 {object} dto.LetterResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter is pending approval"
// @Security BearerAuth
// @Router /letters/{id} [put]
func (h *letterHandler) updateLetter(c *gin.Context) {
	var req dto.UpdateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	letter, err := h.letterService.UpdateLetter(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update letter")
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterResponse(letter))
}

// deleteLetter godoc
// @Summary Delete a letter
// @Tags letters
// @Param id path string true "Letter ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /letters/{id} [delete]
func (h *letterHandler) deleteLetter(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.letterService.DeleteLetter(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete letter")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteLetters godoc
// @Summary Bulk delete letters
// @Tags letters
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Letter ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /letters/bulk-delete [post]
func (h *letterHandler) bulkDeleteLetters(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.letterService.BulkDeleteLetters(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete letters")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitLetter godoc
// @Summary Submit a letter for approval
// @Tags letters
// @Produce json
// @Param id path string true "Letter ID"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Letter already pending or approved"
// @Security BearerAuth
// @Router /letters/{id}/submit [post]
func (h *letterHandler) submitLetter(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	approval, err := h.letterService.SubmitLetterForApproval(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to submit letter")
		return
	}
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}
