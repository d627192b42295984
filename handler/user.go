package handler

import (
	"net/http"
	"strconv"

	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	identify := middleware.OptionalAuth(secret)

	g := r.Group("/users")
	g.POST("", context.Wrap(h.Create))
	g.GET("", identify, context.Wrap(h.List))
	g.GET("/me", authorize, context.Wrap(h.Me))
	g.GET("/:user_id", identify, context.Wrap(h.Retrieve))
}

// Create 注册用户
func (h *User) Create(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	view, err := h.UserService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, view)
	return nil
}

// List 用户列表
func (h *User) List(c *gin.Context) error {
	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewValidationError(err.Error())
	}

	views, total, err := h.UserService.List(c.Request.Context(), page, context.OptionalUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"count": total, "results": views})
	return nil
}

// Me 当前登录用户
func (h *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	view, err := h.UserService.Get(c.Request.Context(), userID, userID)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

// Retrieve 任意用户信息
func (h *User) Retrieve(c *gin.Context) error {
	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	view, err := h.UserService.Get(c.Request.Context(), targetID, context.OptionalUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}
