package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	"Foodgram/pkg/snowflake"
	"Foodgram/pkg/utils"
	"Foodgram/types"

	"go.uber.org/zap"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	Create(ctx context.Context, authorID int64, req *types.CreateRecipeRequest) (*types.RecipeView, error)
	Update(ctx context.Context, recipeID, requesterID int64, req *types.UpdateRecipeRequest) (*types.RecipeView, error)
	Delete(ctx context.Context, recipeID, requesterID int64) error
	Get(ctx context.Context, recipeID, viewerID int64) (*types.RecipeView, error)
	List(ctx context.Context, req types.ListRecipesRequest, viewerID int64) (*types.ListRecipesResponse, error)
}

type RecipeService struct {
	Config        *config.Config
	RecipeDAO     *dao.RecipeDAO
	IngredientDAO *dao.IngredientDAO
	TagDAO        *dao.TagDAO
	UserDAO       *dao.UserDAO
	MembershipDAO *dao.MembershipDAO
	FollowDAO     *dao.FollowDAO
	Membership    IMembershipService
	Policy        IAccessPolicy
}

// Create 创建菜谱：校验通过后菜谱行 + 配料行 + 标签行一次事务落库
func (s *RecipeService) Create(ctx context.Context, authorID int64, req *types.CreateRecipeRequest) (*types.RecipeView, error) {
	if err := s.Policy.Authorize(ActionCreateRecipe, authorID, 0); err != nil {
		return nil, err
	}

	ingredients, tags, err := s.validateRelations(ctx, req.CookingTime, req.Ingredients, req.TagIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:          snowflake.GenID(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		PubDate:     time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.RecipeDAO.CreateWithRelations(ctx, recipe, ingredients, tags); err != nil {
		return nil, err
	}

	log.L.Info("recipe created",
		zap.Int64("recipe_id", recipe.ID),
		zap.Int64("author_id", authorID),
		zap.String("name", utils.Truncate(recipe.Name, s.Config.App.SummaryMaxLen)),
	)

	return s.Get(ctx, recipe.ID, authorID)
}

// Update 部分更新：缺省的标量字段保持原值，
// 配料/标签列表一旦出现则整组替换（先删后插）
func (s *RecipeService) Update(ctx context.Context, recipeID, requesterID int64, req *types.UpdateRecipeRequest) (*types.RecipeView, error) {
	recipe, err := s.RecipeDAO.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, response.NewNotFoundError("菜谱不存在")
	}
	if err := s.Policy.Authorize(ActionUpdateRecipe, requesterID, recipe.AuthorID); err != nil {
		return nil, err
	}

	cookingTime := recipe.CookingTime
	if req.CookingTime != nil {
		cookingTime = *req.CookingTime
	}

	var ingredients []models.RecipeIngredient
	var tags []models.RecipeTag
	if req.Ingredients != nil || req.TagIDs != nil {
		ingredients, tags, err = s.validateRelations(ctx, cookingTime, req.Ingredients, req.TagIDs)
		if err != nil {
			return nil, err
		}
	} else if cookingTime < 1 {
		return nil, response.NewValidationError("cooking_time 不能小于 1")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if req.Ingredients == nil {
		ingredients = nil
	}
	if req.TagIDs == nil {
		tags = nil
	}
	if err := s.RecipeDAO.UpdateWithRelations(ctx, recipeID, updates, ingredients, tags); err != nil {
		return nil, err
	}

	return s.Get(ctx, recipeID, requesterID)
}

// Delete 仅作者可删，连带清掉配料、标签和所有列表成员关系
func (s *RecipeService) Delete(ctx context.Context, recipeID, requesterID int64) error {
	recipe, err := s.RecipeDAO.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return response.NewNotFoundError("菜谱不存在")
	}
	if err := s.Policy.Authorize(ActionDeleteRecipe, requesterID, recipe.AuthorID); err != nil {
		return err
	}

	if err := s.RecipeDAO.Delete(ctx, recipeID); err != nil {
		return err
	}

	log.L.Info("recipe deleted",
		zap.Int64("recipe_id", recipeID),
		zap.String("name", utils.Truncate(recipe.Name, s.Config.App.SummaryMaxLen)),
	)
	return nil
}

func (s *RecipeService) Get(ctx context.Context, recipeID, viewerID int64) (*types.RecipeView, error) {
	recipe, err := s.RecipeDAO.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, response.NewNotFoundError("菜谱不存在")
	}
	views, err := s.buildViews(ctx, []*models.Recipe{recipe}, viewerID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *RecipeService) List(ctx context.Context, req types.ListRecipesRequest, viewerID int64) (*types.ListRecipesResponse, error) {
	recipes, total, err := s.RecipeDAO.List(ctx, req, viewerID)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(ctx, recipes, viewerID)
	if err != nil {
		return nil, err
	}
	return &types.ListRecipesResponse{Count: total, Results: views}, nil
}

// validateRelations 配料/标签的共用校验：
// 数量和时长为正、没有重复 ID、引用的记录都存在
func (s *RecipeService) validateRelations(
	ctx context.Context,
	cookingTime int,
	items []types.IngredientAmount,
	tagIDs []int64,
) ([]models.RecipeIngredient, []models.RecipeTag, error) {
	if cookingTime < 1 {
		return nil, nil, response.NewValidationError("cooking_time 不能小于 1")
	}

	if dups := duplicatedIDs(ingredientIDs(items)); len(dups) > 0 {
		return nil, nil, response.NewValidationError("配料重复选择: " + joinIDs(dups))
	}
	if dups := duplicatedIDs(tagIDs); len(dups) > 0 {
		return nil, nil, response.NewValidationError("标签重复选择: " + joinIDs(dups))
	}

	for _, item := range items {
		if item.Amount < 1 {
			return nil, nil, response.NewValidationError(fmt.Sprintf("配料 %d 的数量不能小于 1", item.ID))
		}
	}

	found, err := s.IngredientDAO.FindByIDs(ctx, ingredientIDs(items))
	if err != nil {
		return nil, nil, err
	}
	exists := make(map[int64]struct{}, len(found))
	for _, ing := range found {
		exists[ing.ID] = struct{}{}
	}
	for _, item := range items {
		if _, ok := exists[item.ID]; !ok {
			return nil, nil, response.NewValidationError(fmt.Sprintf("配料 %d 不存在", item.ID))
		}
	}

	foundTags, err := s.TagDAO.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	tagExists := make(map[int64]struct{}, len(foundTags))
	for _, tag := range foundTags {
		tagExists[tag.ID] = struct{}{}
	}
	for _, id := range tagIDs {
		if _, ok := tagExists[id]; !ok {
			return nil, nil, response.NewValidationError(fmt.Sprintf("标签 %d 不存在", id))
		}
	}

	rows := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount})
	}
	tagRows := make([]models.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tagRows = append(tagRows, models.RecipeTag{TagID: id})
	}
	return rows, tagRows, nil
}

// buildViews 批量拼装菜谱详情：作者、标签、配料行、收藏/购物车标记
func (s *RecipeService) buildViews(ctx context.Context, recipes []*models.Recipe, viewerID int64) ([]types.RecipeView, error) {
	if len(recipes) == 0 {
		return []types.RecipeView{}, nil
	}

	recipeIDs := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[int64]*models.User, len(authors))
	for _, u := range authors {
		authorMap[u.ID] = u
	}

	ingredientRows, err := s.RecipeDAO.FindIngredientRows(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	tagRows, err := s.RecipeDAO.FindTagRows(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	favorited := map[int64]struct{}{}
	inCart := map[int64]struct{}{}
	subscribed := map[int64]struct{}{}
	if viewerID > 0 {
		// 单条详情走缓存优先的成员检查，列表一次批量查库
		if len(recipes) == 1 {
			id := recipes[0].ID
			fav, err := s.Membership.Contains(ctx, types.ListKindFavorites, viewerID, id)
			if err != nil {
				return nil, err
			}
			if fav {
				favorited[id] = struct{}{}
			}
			carted, err := s.Membership.Contains(ctx, types.ListKindShoppingCart, viewerID, id)
			if err != nil {
				return nil, err
			}
			if carted {
				inCart[id] = struct{}{}
			}
		} else {
			favIDs, err := s.MembershipDAO.ListRecipeIDs(ctx, types.ListKindFavorites, viewerID)
			if err != nil {
				return nil, err
			}
			for _, id := range favIDs {
				favorited[id] = struct{}{}
			}
			cartIDs, err := s.MembershipDAO.ListRecipeIDs(ctx, types.ListKindShoppingCart, viewerID)
			if err != nil {
				return nil, err
			}
			for _, id := range cartIDs {
				inCart[id] = struct{}{}
			}
		}
		followingIDs, _, err := s.FollowDAO.ListFollowingIDs(ctx, viewerID, 0, 0)
		if err != nil {
			return nil, err
		}
		for _, id := range followingIDs {
			subscribed[id] = struct{}{}
		}
	}

	views := make([]types.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		view := types.RecipeView{
			ID:          r.ID,
			Name:        r.Name,
			Text:        r.Text,
			CookingTime: r.CookingTime,
			Image:       r.Image,
			Tags:        []models.Tag{},
			Ingredients: []types.RecipeIngredientView{},
		}
		if author, ok := authorMap[r.AuthorID]; ok {
			_, isSub := subscribed[author.ID]
			view.Author = types.UserView{
				ID:           author.ID,
				Email:        author.Email,
				Username:     author.Username,
				FirstName:    author.FirstName,
				LastName:     author.LastName,
				IsSubscribed: isSub,
			}
		}
		for _, row := range tagRows {
			if row.RecipeID == r.ID {
				view.Tags = append(view.Tags, models.Tag{
					ID:    row.TagID,
					Name:  row.Name,
					Color: row.Color,
					Slug:  row.Slug,
				})
			}
		}
		for _, row := range ingredientRows {
			if row.RecipeID == r.ID {
				view.Ingredients = append(view.Ingredients, types.RecipeIngredientView{
					ID:              row.IngredientID,
					Name:            row.Name,
					MeasurementUnit: row.MeasurementUnit,
					Amount:          row.Amount,
				})
			}
		}
		_, view.IsFavorited = favorited[r.ID]
		_, view.IsInShoppingCart = inCart[r.ID]
		views = append(views, view)
	}
	return views, nil
}

func ingredientIDs(items []types.IngredientAmount) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// duplicatedIDs 返回出现了不止一次的 ID，每个只报一次，按值排序
func duplicatedIDs(ids []int64) []int64 {
	seen := make(map[int64]int, len(ids))
	for _, id := range ids {
		seen[id]++
	}
	var dups []int64
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
