package controller

import (
	"tradelens_backend/internal/util"
	"tradelens_backend/pkg/kvstore"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store  kvstore.Store
	Driver string
}

func NewHealthController(store kvstore.Store, driver string) *HealthController {
	return &HealthController{Store: store, Driver: driver}
}

// @Summary Health check
// @Description Report service liveness and storage reachability
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	status := "ok"
	storage := "ok"
	if _, err := c.Store.Get(ctx.Request.Context(), util.KeySettings); err != nil {
		status = "degraded"
		storage = err.Error()
	}

	util.Success(ctx, gin.H{
		"status":  status,
		"driver":  c.Driver,
		"storage": storage,
	})
}
