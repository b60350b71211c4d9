package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

type SomedayHandler struct {
	somedayService ports.SomedayService
}

func NewSomedayHandler(somedayService ports.SomedayService) *SomedayHandler {
	return &SomedayHandler{somedayService: somedayService}
}

func (h *SomedayHandler) ListLists(c *gin.Context) {
	lists, err := h.somedayService.ListLists(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSomedayLists(lists))
}

func (h *SomedayHandler) CreateList(c *gin.Context) {
	var req dto.SomedayListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	list, err := h.somedayService.CreateList(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToSomedayList(list))
}

func (h *SomedayHandler) RenameList(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	var req dto.SomedayListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	list, err := h.somedayService.RenameList(c.Request.Context(), id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSomedayList(list))
}

func (h *SomedayHandler) ReorderLists(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	lists, err := h.somedayService.ReorderLists(c.Request.Context(), req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSomedayLists(lists))
}

func (h *SomedayHandler) DeleteList(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}

	if err := h.somedayService.DeleteList(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
