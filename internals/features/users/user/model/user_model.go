package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID       uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserEmail    string `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserPassword string `gorm:"column:user_password;not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
