package handler

import (
	"net/http"
	"strconv"

	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type Ingredient struct {
	IngredientService service.IIngredientService
}

func (h *Ingredient) RegisterRouter(r gin.IRouter) {
	g := r.Group("/ingredients")
	g.GET("", context.Wrap(h.Search))
	g.GET("/:ingredient_id", context.Wrap(h.Retrieve))
}

// Search 按名称子串搜索，以查询开头的排在前面
func (h *Ingredient) Search(c *gin.Context) error {
	var req types.SearchIngredientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	items, err := h.IngredientService.Search(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// Retrieve 单个配料
func (h *Ingredient) Retrieve(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("ingredient_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "ingredient_id 格式错误")
	}

	item, err := h.IngredientService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
