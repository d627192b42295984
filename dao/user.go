package dao

import (
	"context"

	"Foodgram/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByIDs 按 ID 列表查询
func (d *UserDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// List 用户列表
func (d *UserDAO) List(ctx context.Context, limit, offset int) ([]*models.User, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}
