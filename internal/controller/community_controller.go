package controller

import (
	"errors"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// @Summary Get feed
// @Description Return community posts filtered and sorted per query
// @Tags community
// @Produce json
// @Param symbol query string false "Crypto symbol filter" default(ALL)
// @Param type query string false "Post type filter" default(all)
// @Param trend query string false "Tag substring filter"
// @Param sort query string false "Sort order" Enums(recent, popular, accurate, engagement) default(recent)
// @Success 200 {object} util.Response
// @Router /api/community/posts [get]
func (c *CommunityController) GetFeed(ctx *gin.Context) {
	filter := service.FeedFilter{
		CryptoSymbol: ctx.DefaultQuery("symbol", "ALL"),
		PostType:     ctx.DefaultQuery("type", "all"),
		Trend:        ctx.Query("trend"),
		Sort:         ctx.DefaultQuery("sort", service.SortRecent),
	}

	posts, err := c.CommunityService.GetFeed(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

// @Summary Post counts per symbol
// @Description Tally posts per known crypto symbol plus an ALL total
// @Tags community
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/community/counts [get]
func (c *CommunityController) GetCounts(ctx *gin.Context) {
	counts, err := c.CommunityService.CryptoPostCounts(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// @Summary Create post
// @Description Publish a new community post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PostRequest true "Post payload"
// @Success 201 {object} util.Response
// @Router /api/community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.AddPost(ctx.Request.Context(), user.UserID, user.DisplayName, req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, post)
}

// @Summary Toggle like
// @Description Like the post, or remove the like if already present
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} util.Response
// @Router /api/community/posts/{id}/like [post]
func (c *CommunityController) ToggleLike(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	post, err := c.CommunityService.ToggleLike(ctx.Request.Context(), ctx.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, post)
}

// @Summary Add comment
// @Description Append a comment to the post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Param request body service.CommentRequest true "Comment payload"
// @Success 201 {object} util.Response
// @Router /api/community/posts/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.AddComment(ctx.Request.Context(), ctx.Param("id"), user.UserID, user.DisplayName, req)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, post)
}
