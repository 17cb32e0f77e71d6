package entity

import "time"

// User 后台用户
type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Username       string     `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Password       string     `json:"-" gorm:"size:128;not null"` // bcrypt hash
	Name           string     `json:"name,omitempty" gorm:"size:64"`
	Email          string     `json:"email,omitempty" gorm:"size:128"`
	IsLocked       bool       `json:"is_locked" gorm:"not null;default:false"`
	LoginFailCount int        `json:"-" gorm:"not null;default:0"`
	LockedUntil    *time.Time `json:"-"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
