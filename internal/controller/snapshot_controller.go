package controller

import (
	"errors"
	"io"
	"net/http"

	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SnapshotController struct {
	SnapshotService *service.SnapshotService
}

func NewSnapshotController(snapshotService *service.SnapshotService) *SnapshotController {
	return &SnapshotController{SnapshotService: snapshotService}
}

// @Summary Export data
// @Description Download all collections as one JSON document
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {string} string "snapshot JSON"
// @Router /api/data/export [get]
func (c *SnapshotController) Export(ctx *gin.Context) {
	data, err := c.SnapshotService.Export(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="tradelens-export.json"`)
	ctx.Data(http.StatusOK, "application/json", data)
}

// @Summary Import data
// @Description Restore collections from an exported JSON document
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/data/import [post]
func (c *SnapshotController) Import(ctx *gin.Context) {
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SnapshotService.Import(ctx.Request.Context(), data); err != nil {
		if errors.Is(err, util.ErrInvalidSnapshot) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Backup data
// @Description Export current state and push it to the configured backup provider
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/data/backup [post]
func (c *SnapshotController) Backup(ctx *gin.Context) {
	location, err := c.SnapshotService.BackupNow(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"location": location})
}
