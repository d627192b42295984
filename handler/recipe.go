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

type Recipe struct {
	Config        *config.Config
	RecipeService service.IRecipeService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	identify := middleware.OptionalAuth(secret)

	g := r.Group("/recipes")
	g.GET("", identify, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/:recipe_id", identify, context.Wrap(h.Retrieve))
	g.PATCH("/:recipe_id", authorize, context.Wrap(h.Update))
	g.DELETE("/:recipe_id", authorize, context.Wrap(h.Delete))
}

func recipeIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "recipe_id 格式错误")
	}
	return id, nil
}

// List 菜谱列表，支持作者 / 标签 / 收藏 / 购物车过滤
func (h *Recipe) List(c *gin.Context) error {
	var req types.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	resp, err := h.RecipeService.List(c.Request.Context(), req, context.OptionalUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Retrieve 菜谱详情
func (h *Recipe) Retrieve(c *gin.Context) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	view, err := h.RecipeService.Get(c.Request.Context(), recipeID, context.OptionalUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

// Create 创建菜谱
func (h *Recipe) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	view, err := h.RecipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, view)
	return nil
}

// Update 部分更新，仅作者可操作
func (h *Recipe) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	recipeID, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	view, err := h.RecipeService.Update(c.Request.Context(), recipeID, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

// Delete 删除菜谱，仅作者可操作
func (h *Recipe) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	recipeID, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.RecipeService.Delete(c.Request.Context(), recipeID, userID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
