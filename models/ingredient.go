package models

// Ingredient 配料，(name, measurement_unit) 唯一
type Ingredient struct {
	ID              int64  `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	Name            string `gorm:"column:name;type:varchar(200);not null;index:idx_ingredient_name;uniqueIndex:uk_name_unit,priority:1" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;type:varchar(200);not null;uniqueIndex:uk_name_unit,priority:2" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
