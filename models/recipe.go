package models

import "time"

type Recipe struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	AuthorID    int64     `gorm:"column:author_id;not null;index:idx_recipe_author" json:"author_id"`
	Name        string    `gorm:"column:name;type:varchar(200);not null;index:idx_recipe_name" json:"name"`
	Text        string    `gorm:"column:text;type:text" json:"text"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"`
	Image       string    `gorm:"column:image;type:varchar(500);not null;default:''" json:"image"`
	PubDate     time.Time `gorm:"column:pub_date;index:idx_recipe_pub_date" json:"pub_date"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 菜谱-配料中间表，带用量
// 唯一键: recipe_id + ingredient_id
type RecipeIngredient struct {
	ID           int64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	RecipeID     int64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID int64 `gorm:"column:ingredient_id;not null;uniqueIndex:uk_recipe_ingredient,priority:2" json:"ingredient_id"`
	Amount       int   `gorm:"column:amount;not null" json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeTag 菜谱-标签中间表
// 唯一键: recipe_id + tag_id
type RecipeTag struct {
	ID       int64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	RecipeID int64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_tag,priority:1" json:"recipe_id"`
	TagID    int64 `gorm:"column:tag_id;not null;uniqueIndex:uk_recipe_tag,priority:2" json:"tag_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Tag    *Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
