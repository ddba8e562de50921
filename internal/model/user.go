package model

import "time"

// User 用户模型
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex;comment:用户名" json:"username"`
	Email     string    `gorm:"size:254;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password  string    `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	FirstName string    `gorm:"size:150;not null;default:'';comment:名" json:"first_name"`
	LastName  string    `gorm:"size:150;not null;default:'';comment:姓" json:"last_name"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系
	Recipes []Recipe `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
}

func (User) TableName() string {
	return "users"
}
