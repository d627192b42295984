package service

import (
	"context"

	"Foodgram/dao"
	"Foodgram/pkg/response"
	"Foodgram/types"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	ListFollowing(ctx context.Context, userID int64, page types.PageRequest, recipesLimit int) (*types.ListFollowingResponse, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.UserDAO
	RecipeDAO *dao.RecipeDAO
	Policy    IAccessPolicy
}

// Follow 订阅作者：不能订阅自己，同一对关系只允许一条
func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	if err := s.Policy.Authorize(ActionSubscribe, followerID, 0); err != nil {
		return err
	}
	if followerID == followingID {
		return response.NewConflictError("不能关注自己")
	}

	target, err := s.UserDAO.GetByID(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return response.NewNotFoundError("用户不存在")
	}

	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if isFollowing {
		return response.NewConflictError("已经关注过该用户")
	}

	if err := s.FollowDAO.CreateFollow(ctx, followerID, followingID); err != nil {
		// 并发订阅时唯一键兜底
		if dao.IsDuplicateErr(err) {
			return response.NewConflictError("已经关注过该用户")
		}
		return err
	}
	return nil
}

// Unfollow 取消订阅，本来就没订阅返回 404
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if err := s.Policy.Authorize(ActionSubscribe, followerID, 0); err != nil {
		return err
	}

	removed, err := s.FollowDAO.DeleteFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return response.NewNotFoundError("没有关注该用户")
	}
	return nil
}

// ListFollowing 我订阅的作者列表，每个作者带菜谱缩略列表和总数
func (s *FollowService) ListFollowing(ctx context.Context, userID int64, page types.PageRequest, recipesLimit int) (*types.ListFollowingResponse, error) {
	if err := s.Policy.Authorize(ActionListSubscription, userID, 0); err != nil {
		return nil, err
	}

	limit, offset := page.Normalize()
	ids, total, err := s.FollowDAO.ListFollowingIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	users, err := s.UserDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]*types.UserView, len(users))
	for _, u := range users {
		userMap[u.ID] = &types.UserView{
			ID:           u.ID,
			Email:        u.Email,
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			IsSubscribed: true,
		}
	}

	results := make([]types.FollowingView, 0, len(ids))
	for _, id := range ids {
		user, ok := userMap[id]
		if !ok {
			continue
		}
		recipes, err := s.RecipeDAO.FindByAuthor(ctx, id, recipesLimit)
		if err != nil {
			return nil, err
		}
		count, err := s.RecipeDAO.CountByAuthor(ctx, id)
		if err != nil {
			return nil, err
		}
		summaries := make([]types.RecipeSummary, 0, len(recipes))
		for _, r := range recipes {
			summaries = append(summaries, types.RecipeSummary{
				ID:          r.ID,
				Name:        r.Name,
				Image:       r.Image,
				CookingTime: r.CookingTime,
			})
		}
		results = append(results, types.FollowingView{
			UserView:     *user,
			Recipes:      summaries,
			RecipesCount: count,
		})
	}

	return &types.ListFollowingResponse{Count: total, Results: results}, nil
}
