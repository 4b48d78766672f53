package services

import (
	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// ListTagNames returns the distinct tag names, sorted.
func ListTagNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0)
	err := db.Model(&models.Tag{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
