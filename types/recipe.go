package types

import "Foodgram/models"

// IngredientAmount 创建/更新菜谱时的配料项
type IngredientAmount struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required"`
}

// CreateRecipeRequest 创建菜谱请求
type CreateRecipeRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time" binding:"required"`
	Image       string             `json:"image"` // base64 入站，出站转 URL 引用
	TagIDs      []int64            `json:"tags" binding:"required"`
	Ingredients []IngredientAmount `json:"ingredients" binding:"required"`
}

// UpdateRecipeRequest 部分更新：标量字段缺省保持原值，
// 配料/标签列表一旦出现则整组替换
type UpdateRecipeRequest struct {
	Name        *string            `json:"name"`
	Text        *string            `json:"text"`
	CookingTime *int               `json:"cooking_time"`
	Image       *string            `json:"image"`
	TagIDs      []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RecipeIngredientView 菜谱详情里的配料行
type RecipeIngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeView 菜谱详情
type RecipeView struct {
	ID               int64                  `json:"id"`
	Tags             []models.Tag           `json:"tags"`
	Author           UserView               `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeSummary 收藏/购物车/订阅列表里的菜谱缩略信息
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// ListRecipesRequest 菜谱列表过滤参数
type ListRecipesRequest struct {
	PageRequest
	Author           int64    `form:"author"`
	Tags             []string `form:"tags"` // 标签 slug，多值任一命中
	IsFavorited      int      `form:"is_favorited" binding:"omitempty,oneof=0 1"`
	IsInShoppingCart int      `form:"is_in_shopping_cart" binding:"omitempty,oneof=0 1"`
}

// ListRecipesResponse 菜谱列表响应
type ListRecipesResponse struct {
	Count   int64        `json:"count"`
	Results []RecipeView `json:"results"`
}
