package controller

import (
	"tradelens_backend/internal/service"
	"tradelens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Get profile
// @Description Return the current trader profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.UserService.Profile(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if user == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// @Summary Update profile
// @Description Merge the provided fields into the trader profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if user == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}
