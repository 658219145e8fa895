package controller

import (
	"tradelens_backend/internal/model"
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// @Summary Get settings
// @Description Return the stored settings, or documented defaults
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.SettingsService.Get(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary Update settings
// @Description Overwrite the settings document
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Settings true "New settings"
// @Success 200 {object} util.Response
// @Router /api/settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var settings model.Settings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.SettingsService.Update(ctx.Request.Context(), settings)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}
