package models

import (
	"time"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account in the system. Email is the login key.
// Accounts are retired by clearing IsActive rather than deleted.
type User struct {
	UserID     uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName  string    `gorm:"size:100" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Role       string    `gorm:"size:50;not null;default:user" json:"role"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	IsStaff    bool      `gorm:"not null;default:false" json:"is_staff"`
	ProfilePic string    `gorm:"size:255" json:"profil_pic"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user passes the administrative gate.
func (u *User) IsAdmin() bool {
	return u.IsStaff || u.Role == RoleAdmin
}
