package models

import (
	"time"
)

// Notification priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// NotificationTypeEvent is the only notification type emitted by the
// material lifecycle hook.
const NotificationTypeEvent = "Event"

// ValidPriority reports whether p is an allowed priority value.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Notification records an event relevant to a user. Rows are created
// by the lifecycle hook or the explicit create endpoint and are
// read-only afterwards.
type Notification struct {
	NotificationID uint      `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	Type           string    `gorm:"size:50;not null" json:"type"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Priority       string    `gorm:"size:50;not null" json:"priority"`
	Description    string    `gorm:"type:text" json:"description"`
	UserID         uint      `gorm:"not null;index" json:"user"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Metadata       JSON      `gorm:"type:json" json:"metadata"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName overrides the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
