package handler

import (
	"fmt"
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

// List 收藏 / 购物车两类成员列表共用的处理器
type List struct {
	Config              *config.Config
	MembershipService   service.IMembershipService
	ShoppingListService service.IShoppingListService
}

func (h *List) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/recipes")
	g.GET("/download_shopping_cart", authorize, context.Wrap(h.DownloadShoppingCart))
	g.POST("/:recipe_id/favorite", authorize, context.Wrap(h.addTo(types.ListKindFavorites)))
	g.DELETE("/:recipe_id/favorite", authorize, context.Wrap(h.removeFrom(types.ListKindFavorites)))
	g.POST("/:recipe_id/shopping_cart", authorize, context.Wrap(h.addTo(types.ListKindShoppingCart)))
	g.DELETE("/:recipe_id/shopping_cart", authorize, context.Wrap(h.removeFrom(types.ListKindShoppingCart)))
}

func (h *List) addTo(kind types.ListKind) func(*gin.Context) error {
	return func(c *gin.Context) error {
		userID, err := context.GetUserID(c)
		if err != nil {
			return response.NewUnauthorizedError("未登录")
		}

		recipeID, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "recipe_id 格式错误")
		}

		summary, err := h.MembershipService.Add(c.Request.Context(), kind, userID, recipeID)
		if err != nil {
			return err
		}
		response.Created(c, summary)
		return nil
	}
}

func (h *List) removeFrom(kind types.ListKind) func(*gin.Context) error {
	return func(c *gin.Context) error {
		userID, err := context.GetUserID(c)
		if err != nil {
			return response.NewUnauthorizedError("未登录")
		}

		recipeID, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "recipe_id 格式错误")
		}

		if err := h.MembershipService.Remove(c.Request.Context(), kind, userID, recipeID); err != nil {
			return err
		}
		response.NoContent(c)
		return nil
	}
}

// DownloadShoppingCart 购物清单 CSV 下载
func (h *List) DownloadShoppingCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError("未登录")
	}

	file, err := h.ShoppingListService.Export(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", file.Content)
	return nil
}
