package service

import (
	"context"

	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/response"
	"Foodgram/pkg/snowflake"
	"Foodgram/pkg/utils"
	"Foodgram/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Create(ctx context.Context, req *types.CreateUserRequest) (*types.UserView, error)
	Get(ctx context.Context, userID, viewerID int64) (*types.UserView, error)
	List(ctx context.Context, page types.PageRequest, viewerID int64) ([]types.UserView, int64, error)
}

type UserService struct {
	UserDAO   *dao.UserDAO
	FollowDAO *dao.FollowDAO
	Policy    IAccessPolicy
}

// Create 注册用户，邮箱和用户名都要唯一
func (s *UserService) Create(ctx context.Context, req *types.CreateUserRequest) (*types.UserView, error) {
	taken, err := s.UserDAO.IsExist(ctx, "email = ? OR username = ?", req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, response.NewConflictError("邮箱或用户名已被占用")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           snowflake.GenID(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if dao.IsDuplicateErr(err) {
			return nil, response.NewConflictError("邮箱或用户名已被占用")
		}
		return nil, err
	}

	return &types.UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *UserService) Get(ctx context.Context, userID, viewerID int64) (*types.UserView, error) {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFoundError("用户不存在")
	}

	isSubscribed := false
	if viewerID > 0 && viewerID != userID {
		isSubscribed, err = s.FollowDAO.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &types.UserView{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}, nil
}

func (s *UserService) List(ctx context.Context, page types.PageRequest, viewerID int64) ([]types.UserView, int64, error) {
	limit, offset := page.Normalize()
	users, total, err := s.UserDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	subscribed := map[int64]struct{}{}
	if viewerID > 0 {
		ids, _, err := s.FollowDAO.ListFollowingIDs(ctx, viewerID, 0, 0)
		if err != nil {
			return nil, 0, err
		}
		for _, id := range ids {
			subscribed[id] = struct{}{}
		}
	}

	views := make([]types.UserView, 0, len(users))
	for _, u := range users {
		_, isSub := subscribed[u.ID]
		views = append(views, types.UserView{
			ID:           u.ID,
			Email:        u.Email,
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			IsSubscribed: isSub,
		})
	}
	return views, total, nil
}
