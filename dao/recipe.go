package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/types"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// CreateWithRelations 菜谱 + 配料行 + 标签行在一个事务里落库，
// 任何一步失败整体回滚
func (d *RecipeDAO) CreateWithRelations(
	ctx context.Context,
	recipe *models.Recipe,
	ingredients []models.RecipeIngredient,
	tags []models.RecipeTag,
) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		for i := range tags {
			tags[i].RecipeID = recipe.ID
		}
		if len(tags) > 0 {
			if err := tx.Create(&tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithRelations 更新标量字段；ingredients / tags 传 nil 表示不动，
// 非 nil 则先删后插整组替换
func (d *RecipeDAO) UpdateWithRelations(
	ctx context.Context,
	recipeID int64,
	updates map[string]interface{},
	ingredients []models.RecipeIngredient,
	tags []models.RecipeTag,
) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range ingredients {
				ingredients[i].RecipeID = recipeID
			}
			if len(ingredients) > 0 {
				if err := tx.Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}
		if tags != nil {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
				return err
			}
			for i := range tags {
				tags[i].RecipeID = recipeID
			}
			if len(tags) > 0 {
				if err := tx.Create(&tags).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Delete 删除菜谱并级联清掉配料行、标签行和所有列表成员关系
func (d *RecipeDAO) Delete(ctx context.Context, recipeID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.FavoritesEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.ShoppingCartEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recipeID).Delete(&models.Recipe{}).Error
	})
}

// List 过滤 + 分页，按发布时间倒序
func (d *RecipeDAO) List(ctx context.Context, req types.ListRecipesRequest, viewerID int64) ([]*models.Recipe, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Recipe{})

	if req.Author > 0 {
		query = query.Where("author_id = ?", req.Author)
	}
	if len(req.Tags) > 0 {
		query = query.Where(
			"id IN (?)",
			d.Db.Table("recipe_tags rt").
				Select("rt.recipe_id").
				Joins("JOIN tags t ON t.id = rt.tag_id").
				Where("t.slug IN ?", req.Tags),
		)
	}
	if req.IsFavorited == 1 && viewerID > 0 {
		query = query.Where(
			"id IN (?)",
			d.Db.Table("favorites_entries").Select("recipe_id").Where("user_id = ?", viewerID),
		)
	}
	if req.IsInShoppingCart == 1 && viewerID > 0 {
		query = query.Where(
			"id IN (?)",
			d.Db.Table("shopping_cart_entries").Select("recipe_id").Where("user_id = ?", viewerID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := req.Normalize()
	var recipes []*models.Recipe
	err := query.
		Order("pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	return recipes, total, err
}

// FindByAuthor 某作者的菜谱，按发布时间倒序
func (d *RecipeDAO) FindByAuthor(ctx context.Context, authorID int64, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	query := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recipes).Error
	return recipes, err
}

// CountByAuthor 某作者的菜谱数
func (d *RecipeDAO) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// IngredientRow 配料行联查结果
type IngredientRow struct {
	RecipeID        int64  `gorm:"column:recipe_id"`
	IngredientID    int64  `gorm:"column:ingredient_id"`
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int    `gorm:"column:amount"`
}

// FindIngredientRows 批量取一组菜谱的配料行（带名称和单位）
func (d *RecipeDAO) FindIngredientRows(ctx context.Context, recipeIDs []int64) ([]IngredientRow, error) {
	if len(recipeIDs) == 0 {
		return []IngredientRow{}, nil
	}
	var rows []IngredientRow
	err := d.Db.WithContext(ctx).
		Table("recipe_ingredients ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Order("i.name ASC").
		Scan(&rows).Error
	return rows, err
}

// TagRow 标签行联查结果
type TagRow struct {
	RecipeID int64  `gorm:"column:recipe_id"`
	TagID    int64  `gorm:"column:tag_id"`
	Name     string `gorm:"column:name"`
	Color    string `gorm:"column:color"`
	Slug     string `gorm:"column:slug"`
}

// FindTagRows 批量取一组菜谱的标签行
func (d *RecipeDAO) FindTagRows(ctx context.Context, recipeIDs []int64) ([]TagRow, error) {
	if len(recipeIDs) == 0 {
		return []TagRow{}, nil
	}
	var rows []TagRow
	err := d.Db.WithContext(ctx).
		Table("recipe_tags rt").
		Select("rt.recipe_id, rt.tag_id, t.name, t.color, t.slug").
		Joins("JOIN tags t ON t.id = rt.tag_id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("t.slug ASC").
		Scan(&rows).Error
	return rows, err
}

