package model

// DefaultTagColor 标签默认颜色
const DefaultTagColor = "#00ff7f"

// Tag 标签模型，slug 仅允许字母和数字
type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement;comment:标签ID" json:"id"`
	Name  string `gorm:"size:200;not null;comment:标签名称" json:"name"`
	Slug  string `gorm:"size:200;not null;uniqueIndex;comment:标签slug" json:"slug"`
	Color string `gorm:"size:7;default:'#00ff7f';comment:标签颜色" json:"color"`
}

func (Tag) TableName() string {
	return "tags"
}
