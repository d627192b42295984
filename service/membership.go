package service

import (
	"context"

	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	"Foodgram/types"

	"go.uber.org/zap"
)

var _ IMembershipService = (*MembershipService)(nil)

// IMembershipService 收藏和购物车共用一套成员关系逻辑，只差列表类型
type IMembershipService interface {
	Add(ctx context.Context, kind types.ListKind, userID, recipeID int64) (*types.RecipeSummary, error)
	Remove(ctx context.Context, kind types.ListKind, userID, recipeID int64) error
	Contains(ctx context.Context, kind types.ListKind, userID, recipeID int64) (bool, error)
}

// MembershipCache 成员关系缓存的读写口，写失败不影响主流程
type MembershipCache interface {
	Add(ctx context.Context, kind types.ListKind, userID, recipeID int64)
	Remove(ctx context.Context, kind types.ListKind, userID, recipeID int64)
	IsMember(ctx context.Context, kind types.ListKind, userID, recipeID int64) (bool, error)
}

var _ MembershipCache = (*cache.MembershipStorage)(nil)

type MembershipService struct {
	MembershipDAO *dao.MembershipDAO
	RecipeDAO     *dao.RecipeDAO
	Cache         MembershipCache
	Policy        IAccessPolicy
}

func kindAction(kind types.ListKind) Action {
	if kind == types.ListKindShoppingCart {
		return ActionModifyCart
	}
	return ActionModifyFavorites
}

func kindLabel(kind types.ListKind) string {
	if kind == types.ListKindShoppingCart {
		return "购物车"
	}
	return "收藏"
}

// Add 把菜谱加进列表，重复加入返回冲突错误，成功返回菜谱缩略信息
func (s *MembershipService) Add(ctx context.Context, kind types.ListKind, userID, recipeID int64) (*types.RecipeSummary, error) {
	if !kind.Valid() {
		return nil, response.NewValidationError("未知的列表类型")
	}
	if err := s.Policy.Authorize(kindAction(kind), userID, 0); err != nil {
		return nil, err
	}

	recipe, err := s.RecipeDAO.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, response.NewNotFoundError("菜谱不存在")
	}

	exists, err := s.MembershipDAO.Exists(ctx, kind, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.NewConflictError("菜谱已在" + kindLabel(kind))
	}

	if err := s.MembershipDAO.Add(ctx, kind, userID, recipeID); err != nil {
		// 并发加入时唯一键兜底，两个请求只有一个能成功
		if dao.IsDuplicateErr(err) {
			return nil, response.NewConflictError("菜谱已在" + kindLabel(kind))
		}
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Add(ctx, kind, userID, recipeID)
	}

	log.L.Info("list entry added",
		zap.String("kind", string(kind)),
		zap.Int64("user_id", userID),
		zap.Int64("recipe_id", recipeID),
	)

	return &types.RecipeSummary{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove 把菜谱移出列表，本来就不在列表里返回 404
func (s *MembershipService) Remove(ctx context.Context, kind types.ListKind, userID, recipeID int64) error {
	if !kind.Valid() {
		return response.NewValidationError("未知的列表类型")
	}
	if err := s.Policy.Authorize(kindAction(kind), userID, 0); err != nil {
		return err
	}

	removed, err := s.MembershipDAO.Remove(ctx, kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return response.NewNotFoundError("菜谱不在" + kindLabel(kind))
	}

	if s.Cache != nil {
		s.Cache.Remove(ctx, kind, userID, recipeID)
	}
	return nil
}

// Contains 先查缓存，缓存未命中或出错再回源数据库
func (s *MembershipService) Contains(ctx context.Context, kind types.ListKind, userID, recipeID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	if s.Cache != nil {
		if hit, err := s.Cache.IsMember(ctx, kind, userID, recipeID); err == nil && hit {
			return true, nil
		}
	}
	return s.MembershipDAO.Exists(ctx, kind, userID, recipeID)
}
