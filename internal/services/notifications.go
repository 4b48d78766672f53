package services

import (
	"errors"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// NotificationInput is the explicit-create payload for a notification.
type NotificationInput struct {
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Priority    string      `json:"priority"`
	Description string      `json:"description"`
	UserID      uint        `json:"user"`
	Metadata    models.JSON `json:"metadata"`
}

// ListNotifications returns all notifications, newest first.
func ListNotifications(db *gorm.DB) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// CreateNotification records an event for a user. Notifications are
// read-only once created.
func CreateNotification(db *gorm.DB, in *NotificationInput) (*models.Notification, error) {
	fields := make(map[string]string)
	if in.Title == "" {
		fields["title"] = "This field is required."
	}
	if !models.ValidPriority(in.Priority) {
		fields["priority"] = "Value must be one of: Low, Medium, High."
	}
	if in.UserID == 0 {
		fields["user"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var user models.User
	if err := db.First(&user, "user_id = ?", in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Fields: map[string]string{"user": "User does not exist."}}
		}
		return nil, err
	}

	notification := models.Notification{
		Type:        in.Type,
		Title:       in.Title,
		Priority:    in.Priority,
		Description: in.Description,
		UserID:      in.UserID,
		Metadata:    in.Metadata,
	}
	if notification.Type == "" {
		notification.Type = models.NotificationTypeEvent
	}

	if err := db.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// NotificationsByUser lists a user's notifications, newest first.
func NotificationsByUser(db *gorm.DB, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// ImportantNotificationsByUser lists a user's high-priority
// notifications, newest first.
func ImportantNotificationsByUser(db *gorm.DB, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("user_id = ? AND priority = ?", userID, models.PriorityHigh).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
