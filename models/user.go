package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(100)" json:"username"`
	Email        string     `gorm:"type:varchar(100);index" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	Avatar       string     `gorm:"type:varchar(255)" json:"avatar"`
	Provider     string     `gorm:"type:varchar(50)" json:"provider"` // password / google
	ProviderID   string     `gorm:"type:varchar(100)" json:"providerId"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
