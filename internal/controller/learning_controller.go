package controller

import (
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// @Summary Record lesson progress
// @Description Upsert the trader's progress on one lesson
// @Tags learning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.LessonProgressRequest true "Progress payload"
// @Success 200 {object} util.Response
// @Router /api/lessons/progress [post]
func (c *LearningController) RecordProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LessonProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.LearningService.RecordProgress(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary List lesson progress
// @Description Return all lesson progress rows for the current trader
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/lessons/progress [get]
func (c *LearningController) Progress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.LearningService.Progress(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
