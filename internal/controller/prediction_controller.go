package controller

import (
	"errors"
	"net/http"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	PredictionService *service.PredictionService
}

func NewPredictionController(predictionService *service.PredictionService) *PredictionController {
	return &PredictionController{PredictionService: predictionService}
}

// @Summary Submit prediction
// @Description Record a new price call for the current trader
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PredictionRequest true "Prediction payload"
// @Success 201 {object} util.Response
// @Router /api/predictions [post]
func (c *PredictionController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PredictionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prediction, err := c.PredictionService.Submit(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, prediction)
}

// @Summary List predictions
// @Description Return the current trader's predictions in submission order
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/predictions [get]
func (c *PredictionController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	predictions, err := c.PredictionService.ListByUser(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, predictions)
}

type settleRequest struct {
	Result string `json:"result" binding:"required"`
}

// @Summary Settle prediction
// @Description Record the win/loss outcome of a pending prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prediction id"
// @Param request body settleRequest true "Outcome"
// @Success 200 {object} util.Response
// @Router /api/predictions/{id}/result [patch]
func (c *PredictionController) Settle(ctx *gin.Context) {
	var req settleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prediction, err := c.PredictionService.SettleResult(ctx.Request.Context(), ctx.Param("id"), model.Outcome(req.Result))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPredictionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrResultAlreadySet):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, prediction)
}
