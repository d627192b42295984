package models

import "time"

// ListEntry 用户-菜谱成员关系的通用行结构，收藏和购物车共用，
// 具体落到哪张表由 DAO 按 ListKind 决定
type ListEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// FavoritesEntry 收藏列表
// 唯一键: user_id + recipe_id
type FavoritesEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_favorites_user_recipe,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:uk_favorites_user_recipe,priority:2" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FavoritesEntry) TableName() string {
	return "favorites_entries"
}

// ShoppingCartEntry 购物车
// 唯一键: user_id + recipe_id
type ShoppingCartEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_cart_user_recipe,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:uk_cart_user_recipe,priority:2" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ShoppingCartEntry) TableName() string {
	return "shopping_cart_entries"
}
