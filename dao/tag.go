package dao

import (
	"context"

	"Foodgram/models"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// List 全量标签，按 slug 排序
func (d *TagDAO) List(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Order("slug ASC").Find(&tags).Error
	return tags, err
}

// FindByIDs 按 ID 列表查询
func (d *TagDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
