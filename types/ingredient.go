package types

// SearchIngredientsRequest 配料搜索参数
type SearchIngredientsRequest struct {
	Name string `form:"name"`
}
