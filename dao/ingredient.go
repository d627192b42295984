package dao

import (
	"context"
	"strings"

	"Foodgram/models"

	"gorm.io/gorm"
)

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

// List 全量配料
func (d *IngredientDAO) List(ctx context.Context) ([]*models.Ingredient, error) {
	var items []*models.Ingredient
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// SearchByName 名称子串匹配，排序交给 service 层做
func (d *IngredientDAO) SearchByName(ctx context.Context, name string) ([]*models.Ingredient, error) {
	var items []*models.Ingredient
	pattern := "%" + escapeLike(name) + "%"
	err := d.Db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, pattern).
		Find(&items).Error
	return items, err
}

// FindByIDs 按 ID 列表查询
func (d *IngredientDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Ingredient, error) {
	if len(ids) == 0 {
		return []*models.Ingredient{}, nil
	}
	var items []*models.Ingredient
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// LIKE 转义，防止用户输入里的 % _ 变成通配符
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
