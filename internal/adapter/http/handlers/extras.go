package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

const uploadMessage = "File uploaded successfully"

var errMissingFile = errors.New("multipart form needs task_id and file")

type ExtrasHandler struct {
	extrasService ports.TaskExtrasService
	maxUpload     int64
}

func NewExtrasHandler(extrasService ports.TaskExtrasService, maxUpload int64) *ExtrasHandler {
	return &ExtrasHandler{extrasService: extrasService, maxUpload: maxUpload}
}

func (h *ExtrasHandler) AddTag(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	tag, err := h.extrasService.AddTag(c.Request.Context(), taskID, req.Name, req.Color)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskTag(tag))
}

func (h *ExtrasHandler) RemoveTag(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagId", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	if err := h.extrasService.RemoveTag(c.Request.Context(), taskID, tagID); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (h *ExtrasHandler) AddLink(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AddLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	link, err := h.extrasService.AddLink(c.Request.Context(), taskID, req.URL, req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskLink(link))
}

func (h *ExtrasHandler) RemoveLink(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	linkID, ok := parseID(c, "linkId", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	if err := h.extrasService.RemoveLink(c.Request.Context(), taskID, linkID); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (h *ExtrasHandler) ListAttachments(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	attachments, err := h.extrasService.ListAttachments(c.Request.Context(), taskID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttachments(attachments))
}

func (h *ExtrasHandler) GetAttachment(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	attachment, err := h.extrasService.GetAttachment(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttachment(attachment))
}

// DownloadAttachment streams the stored file back with its original name.
func (h *ExtrasHandler) DownloadAttachment(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	attachment, content, err := h.extrasService.OpenAttachment(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	defer func() {
		if err := content.Close(); err != nil {
			zap.L().Debug("failed to close attachment", zap.Uint64("attachment_id", id), zap.Error(err))
		}
	}()

	c.DataFromReader(http.StatusOK, attachment.FileSize, attachment.MimeType, content, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": attachment.FileName}),
	})
}

func (h *ExtrasHandler) DeleteAttachment(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	if err := h.extrasService.DeleteAttachment(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

// Upload takes a multipart form with task_id and file.
func (h *ExtrasHandler) Upload(c *gin.Context) {
	if h.maxUpload > 0 {
		// Leave room for the multipart envelope around the file.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+(1<<20))
	}

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			fail(c, domain.ErrAttachmentTooLarge)
			return
		}
		badRequest(c, apierrors.MsgMissingFile, err)
		return
	}

	values, files := form.Value["task_id"], form.File["file"]
	if len(values) == 0 || len(files) == 0 {
		badRequest(c, apierrors.MsgMissingFile, errMissingFile)
		return
	}
	taskID, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil || taskID == 0 {
		badRequest(c, apierrors.MsgInvalidTaskID, errInvalidID)
		return
	}

	header := files[0]
	if h.maxUpload > 0 && header.Size > h.maxUpload {
		fail(c, domain.ErrAttachmentTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close upload", zap.Error(err))
		}
	}()

	attachment, err := h.extrasService.UploadAttachment(c.Request.Context(), ports.UploadInput{
		TaskID:   taskID,
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		ID:          attachment.ID,
		FileName:    attachment.FileName,
		FileSize:    attachment.FileSize,
		StoragePath: attachment.StoragePath,
		Message:     uploadMessage,
	})
}
