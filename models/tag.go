package models

import (
	"fmt"

	"Foodgram/pkg/utils"

	"gorm.io/gorm"
)

// Tag 菜谱标签，由管理端预置，接口侧只读
type Tag struct {
	ID    int64  `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	Name  string `gorm:"column:name;type:varchar(200);not null;uniqueIndex:uk_tag_name" json:"name"`
	Color string `gorm:"column:color;type:varchar(7);not null;uniqueIndex:uk_tag_color" json:"color"`
	Slug  string `gorm:"column:slug;type:varchar(200);not null;uniqueIndex:uk_tag_slug" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}

// BeforeSave 落库前校验颜色格式，拦住绕过接口层的写入
func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if !utils.IsHexColor(t.Color) {
		return fmt.Errorf("tag color %q is not a hex color", t.Color)
	}
	return nil
}
