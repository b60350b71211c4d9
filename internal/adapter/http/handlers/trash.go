package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

type TrashHandler struct {
	trashService ports.TrashService
}

func NewTrashHandler(trashService ports.TrashService) *TrashHandler {
	return &TrashHandler{trashService: trashService}
}

func (h *TrashHandler) ListTrash(c *gin.Context) {
	items, err := h.trashService.ListTrash(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTrashItems(items))
}

// Restore answers with the re-created task.
func (h *TrashHandler) Restore(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	task, err := h.trashService.Restore(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TrashHandler) Undo(c *gin.Context) {
	task, err := h.trashService.Undo(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TrashHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	if err := h.trashService.DeleteItem(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (h *TrashHandler) Empty(c *gin.Context) {
	if err := h.trashService.Empty(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
