package controller

import (
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarketController struct {
	MarketService *service.MarketService
}

func NewMarketController(marketService *service.MarketService) *MarketController {
	return &MarketController{MarketService: marketService}
}

// @Summary Spot quote
// @Description Return a simulated spot price for the asset
// @Tags market
// @Produce json
// @Param asset path string true "Asset symbol"
// @Success 200 {object} util.Response
// @Router /api/market/quote/{asset} [get]
func (c *MarketController) Quote(ctx *gin.Context) {
	util.Success(ctx, c.MarketService.Quote(ctx.Param("asset")))
}

// @Summary Market sentiment
// @Description Return a simulated market-mood sample for the asset
// @Tags market
// @Produce json
// @Param asset path string true "Asset symbol"
// @Success 200 {object} util.Response
// @Router /api/market/sentiment/{asset} [get]
func (c *MarketController) Sentiment(ctx *gin.Context) {
	util.Success(ctx, c.MarketService.Sentiment(ctx.Param("asset")))
}
