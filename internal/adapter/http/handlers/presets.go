package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/validation"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

type PresetHandler struct {
	presetService ports.PresetService
}

func NewPresetHandler(presetService ports.PresetService) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

func (h *PresetHandler) ListTagPresets(c *gin.Context) {
	presets, err := h.presetService.ListTagPresets(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTagPresets(presets))
}

func (h *PresetHandler) CreateTagPreset(c *gin.Context) {
	var req dto.CreateTagPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	preset, err := h.presetService.CreateTagPreset(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTagPreset(preset))
}

func (h *PresetHandler) UpdateTagPreset(c *gin.Context) {
	id, input, ok := bindPresetUpdate(c)
	if !ok {
		return
	}

	preset, err := h.presetService.UpdateTagPreset(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTagPreset(preset))
}

func (h *PresetHandler) DeleteTagPreset(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}
	if err := h.presetService.DeleteTagPreset(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (h *PresetHandler) ReorderTagPresets(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	presets, err := h.presetService.ReorderTagPresets(c.Request.Context(), req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTagPresets(presets))
}

func (h *PresetHandler) ListColorPresets(c *gin.Context) {
	presets, err := h.presetService.ListColorPresets(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToColorPresets(presets))
}

func (h *PresetHandler) CreateColorPreset(c *gin.Context) {
	var req dto.CreateColorPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	preset, err := h.presetService.CreateColorPreset(c.Request.Context(), req.Name, req.Hex)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToColorPreset(preset))
}

func (h *PresetHandler) UpdateColorPreset(c *gin.Context) {
	id, input, ok := bindPresetUpdate(c)
	if !ok {
		return
	}

	preset, err := h.presetService.UpdateColorPreset(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToColorPreset(preset))
}

func (h *PresetHandler) DeleteColorPreset(c *gin.Context) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return
	}
	if err := h.presetService.DeleteColorPreset(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (h *PresetHandler) ReorderColorPresets(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return
	}

	presets, err := h.presetService.ReorderColorPresets(c.Request.Context(), req.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToColorPresets(presets))
}

func bindPresetUpdate(c *gin.Context) (uint64, domain.PresetInput, bool) {
	id, ok := parseID(c, "id", apierrors.MsgInvalidID)
	if !ok {
		return 0, domain.PresetInput{}, false
	}

	var req dto.UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return 0, domain.PresetInput{}, false
	}
	input, err := validation.BuildPresetInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidPayload, err)
		return 0, domain.PresetInput{}, false
	}
	return id, input, true
}
