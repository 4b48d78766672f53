package models

import (
	"time"
)

// Tag categorizes materials for quick querying. UserID records who
// created the tag, for accountability; it may be zero when a tag is
// created outside an authenticated request.
type Tag struct {
	TagID     uint      `gorm:"column:tag_id;primaryKey;autoIncrement" json:"tag_id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	UserID    *uint     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
