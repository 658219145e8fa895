package controller

import (
	"tradelens_backend/internal/model"
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MentorController struct {
	Mentor service.MentorProvider
}

func NewMentorController(mentor service.MentorProvider) *MentorController {
	return &MentorController{Mentor: mentor}
}

type mentorPredictRequest struct {
	Asset     string `json:"asset" binding:"required"`
	Timeframe string `json:"timeframe"`
	RSI       int    `json:"rsi"`
}

type mentorAssessRequest struct {
	Asset      string `json:"asset" binding:"required"`
	Timeframe  string `json:"timeframe"`
	RSI        int    `json:"rsi"`
	Direction  string `json:"direction" binding:"required"`
	Confidence int    `json:"confidence"`
	Rationale  string `json:"rationale"`
}

// @Summary Mentor forecast
// @Description Return the mentor forecast with its SHAP-style feature breakdown
// @Tags mentor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body mentorPredictRequest true "Asset and market conditions"
// @Success 200 {object} util.Response
// @Router /api/mentor/predict [post]
func (c *MentorController) Predict(ctx *gin.Context) {
	var req mentorPredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	forecast := c.Mentor.Forecast(req.Asset, req.Timeframe, req.RSI)
	util.Success(ctx, gin.H{
		"forecast":    forecast,
		"explanation": c.Mentor.Explain(forecast),
	})
}

// @Summary Assess prediction
// @Description Compare the trader's call against the mentor and grade the risk
// @Tags mentor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body mentorAssessRequest true "Trader's call plus market conditions"
// @Success 200 {object} util.Response
// @Router /api/mentor/assess [post]
func (c *MentorController) Assess(ctx *gin.Context) {
	var req mentorAssessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	direction := model.Direction(req.Direction)
	if !direction.Valid() {
		util.BadRequest(ctx, "direction must be UP, DOWN or FLAT")
		return
	}

	forecast := c.Mentor.Forecast(req.Asset, req.Timeframe, req.RSI)
	util.Success(ctx, gin.H{
		"forecast": forecast,
		"risk":     c.Mentor.AssessRisk(forecast, direction, req.Confidence),
		"insights": c.Mentor.LearningInsights(forecast, direction, req.Rationale),
	})
}
