package model

// Ingredient 食材模型，(name, measurement_unit) 唯一
type Ingredient struct {
	ID              int64  `gorm:"primaryKey;autoIncrement;comment:食材ID" json:"id"`
	Name            string `gorm:"size:200;not null;uniqueIndex:uq_ingredient_name_unit;index:idx_ingredients_name;comment:食材名称" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null;uniqueIndex:uq_ingredient_name_unit;comment:计量单位" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
