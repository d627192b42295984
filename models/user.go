package models

import "time"

type User struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uk_user_email" json:"email"`
	Username     string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_user_username" json:"username"`
	FirstName    string    `gorm:"column:first_name;type:varchar(150);not null;default:''" json:"first_name"`
	LastName     string    `gorm:"column:last_name;type:varchar(150);not null;default:''" json:"last_name"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(150);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
