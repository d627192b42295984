package types

// FollowingView 订阅列表里的作者条目，带其菜谱缩略列表
type FollowingView struct {
	UserView
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}

// ListFollowingResponse 订阅列表响应
type ListFollowingResponse struct {
	Count   int64           `json:"count"`
	Results []FollowingView `json:"results"`
}
