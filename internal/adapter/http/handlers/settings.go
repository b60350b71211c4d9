package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/validation"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSettings(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidSettings, err)
		return
	}
	input, err := validation.BuildUpdateSettingsInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidSettings, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSettings(settings))
}

func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	settings, err := h.settingsService.ResetSettings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSettings(settings))
}
