package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orghub/org_management_app/internal/core/domain"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// attachmentHandler handles file uploads into external storage.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func newAttachmentHandler(as portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

func registerAttachmentRoutes(rg *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(attachmentService)

	attachments := rg.Group("/attachments")
	{
		attachments.POST("", h.uploadAttachment)
		attachments.GET("/folders", h.listFolders)
		attachments.DELETE("/:fileID", h.deleteAttachment)
	}
}

// uploadAttachment godoc
// @Summary Upload an attachment
// @Description Runs the attachment lifecycle: upload under a temporary name, rename, make public. When "replaces" carries an existing reference the old file is removed best-effort.
// @Tags attachments
// @Accept mpfd
// @Produce json
// @Param file formData file true "File content"
// @Param entityType formData string true "Owning entity type (FINANCE, LETTER, ...)"
// @Param displayName formData string false "Base name for the stored file; defaults to the original filename"
// @Param replaces formData string false "Existing file reference to replace"
// @Success 201 {object} dto.AttachmentResponse
// @Failure 400 {object} ErrorResponse "File too large or extension not allowed"
// @Failure 502 {object} ErrorResponse "Storage provider error"
// @Security BearerAuth
// @Router /attachments [post]
func (h *attachmentHandler) uploadAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Attachment upload missing file part", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file part named 'file' is required"})
		return
	}

	entityType := strings.ToUpper(c.PostForm("entityType"))
	if entityType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entityType is required"})
		return
	}

	displayName := c.PostForm("displayName")
	if displayName == "" {
		ext := filepath.Ext(fileHeader.Filename)
		displayName = strings.TrimSuffix(fileHeader.Filename, ext)
	}

	content, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer content.Close()

	upload := portssvc.AttachmentUpload{
		Content:     content,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		DisplayName: displayName,
		EntityType:  domain.EntityType(entityType),
	}

	var fileID string
	if replaces := c.PostForm("replaces"); replaces != "" {
		fileID, err = h.attachmentService.Replace(c.Request.Context(), replaces, upload)
	} else {
		fileID, err = h.attachmentService.Attach(c.Request.Context(), upload)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to store attachment")
		return
	}

	ref, _ := domain.ParseAttachmentRef(fileID)
	logger.Info("Attachment stored", slog.String("file_id", fileID), slog.String("entity_type", entityType))
	c.JSON(http.StatusCreated, dto.AttachmentResponse{
		FileID:      fileID,
		Name:        fileHeader.Filename,
		ViewURL:     ref.ViewURL(),
		DownloadURL: ref.DownloadURL(),
	})
}

// listFolders godoc
// @Summary List configured storage folders
// @Tags attachments
// @Produce json
// @Success 200 {object} dto.ListFoldersResponse
// @Security BearerAuth
// @Router /attachments/folders [get]
func (h *attachmentHandler) listFolders(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListFoldersResponse{Folders: h.attachmentService.Folders()})
}

// deleteAttachment godoc
// @Summary Delete an attachment
// @Description Deletes the referenced file from storage. A file that is already gone is treated as deleted.
// @Tags attachments
// @Param fileID path string true "File reference"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments/{fileID} [delete]
func (h *attachmentHandler) deleteAttachment(c *gin.Context) {
	if err := h.attachmentService.Remove(c.Request.Context(), c.Param("fileID")); err != nil {
		respondServiceError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
