package dao

import (
	"context"
	"fmt"
	"time"

	"Foodgram/models"
	"Foodgram/types"

	"gorm.io/gorm"
)

// MembershipDAO 收藏 / 购物车共用的一套成员关系访问层，
// 按 ListKind 决定落到哪张表
type MembershipDAO struct {
	Db *gorm.DB
}

func NewMembershipDAO(db *gorm.DB) *MembershipDAO {
	return &MembershipDAO{Db: db}
}

func (d *MembershipDAO) table(kind types.ListKind) (string, error) {
	switch kind {
	case types.ListKindFavorites:
		return models.FavoritesEntry{}.TableName(), nil
	case types.ListKindShoppingCart:
		return models.ShoppingCartEntry{}.TableName(), nil
	}
	return "", fmt.Errorf("unknown list kind %q", kind)
}

// Add 插入成员关系，唯一键冲突时透传库错误，由调用方判定
func (d *MembershipDAO) Add(ctx context.Context, kind types.ListKind, userID, recipeID int64) error {
	table, err := d.table(kind)
	if err != nil {
		return err
	}
	entry := models.ListEntry{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Table(table).Create(&entry).Error
}

// Remove 删除成员关系，返回是否真的删掉了
func (d *MembershipDAO) Remove(ctx context.Context, kind types.ListKind, userID, recipeID int64) (bool, error) {
	table, err := d.table(kind)
	if err != nil {
		return false, err
	}
	res := d.Db.WithContext(ctx).
		Table(table).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ListEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exists 成员关系是否存在
func (d *MembershipDAO) Exists(ctx context.Context, kind types.ListKind, userID, recipeID int64) (bool, error) {
	table, err := d.table(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = d.Db.WithContext(ctx).
		Table(table).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// ListRecipeIDs 用户列表里的菜谱 ID，按加入时间倒序
func (d *MembershipDAO) ListRecipeIDs(ctx context.Context, kind types.ListKind, userID int64) ([]int64, error) {
	table, err := d.table(kind)
	if err != nil {
		return nil, err
	}
	var ids []int64
	err = d.Db.WithContext(ctx).
		Table(table).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("recipe_id", &ids).Error
	return ids, err
}

// CartTotalRow 购物车聚合行
type CartTotalRow struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Total           int64  `gorm:"column:total"`
}

// CartTotals 把购物车里所有菜谱的配料压成按配料分组求和的清单，
// 同名同单位的配料只出现一次，按名称升序
func (d *MembershipDAO) CartTotals(ctx context.Context, userID int64) ([]CartTotalRow, error) {
	var rows []CartTotalRow
	err := d.Db.WithContext(ctx).
		Table("shopping_cart_entries sc").
		Select("i.name, i.measurement_unit, SUM(ri.amount) AS total").
		Joins("JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("sc.user_id = ?", userID).
		Group("i.id, i.name, i.measurement_unit").
		Order("i.name ASC").
		Scan(&rows).Error
	return rows, err
}
