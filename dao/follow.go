package dao

import (
	"context"
	"time"

	"Foodgram/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db)}
}

// IsFollowing 检查是否已订阅
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// CreateFollow 建立订阅，唯一键 / CHECK 冲突时透传库错误
func (d *FollowDAO) CreateFollow(ctx context.Context, followerID, followingID int64) error {
	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&follow).Error
}

// DeleteFollow 解除订阅，返回是否真的删掉了
func (d *FollowDAO) DeleteFollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListFollowingIDs 我订阅的作者 ID，按订阅时间倒序
func (d *FollowDAO) ListFollowingIDs(ctx context.Context, followerID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []int64
	query := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err = query.Pluck("following_id", &ids).Error
	return ids, total, err
}
