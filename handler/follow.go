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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/users")
	g.GET("/subscriptions", authorize, context.Wrap(h.ListFollowing))
	g.POST("/:user_id/subscribe", authorize, context.Wrap(h.Subscribe))
	g.DELETE("/:user_id/subscribe", authorize, context.Wrap(h.Unsubscribe))
}

// Subscribe 订阅作者
func (h *Follow) Subscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	if err := h.FollowService.Follow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}
	response.Created(c, gin.H{"subscribed": true})
	return nil
}

// Unsubscribe 取消订阅
func (h *Follow) Unsubscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// ListFollowing 我的订阅列表
func (h *Follow) ListFollowing(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewValidationError(err.Error())
	}

	recipesLimit := 0
	if v := c.Query("recipes_limit"); v != "" {
		recipesLimit, _ = strconv.Atoi(v)
	}

	resp, err := h.FollowService.ListFollowing(c.Request.Context(), userID, page, recipesLimit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
