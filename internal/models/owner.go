package models

import (
	"time"
)

// Owner wraps a User entitled to hold materials. The unique index on
// UserID keeps one user from backing two owners. Deleting an owner
// cascades to its materials.
type Owner struct {
	OwnerID   uint      `gorm:"column:owner_id;primaryKey;autoIncrement" json:"owner_id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Contact   string    `gorm:"size:255" json:"contact"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Materials []Material `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Owner
func (Owner) TableName() string {
	return "owners"
}

// OwnerLite is the abbreviated projection served by the active-owners view.
type OwnerLite struct {
	OwnerID   uint   `json:"owner_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
}
