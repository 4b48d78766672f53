package helpers

import (
	"testing"
	"time"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// CreateTestUser creates a user account for tests.
func CreateTestUser(t *testing.T, db *gorm.DB, email, role string, staff bool) models.User {
	t.Helper()
	user := models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
		IsStaff:   staff,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

// CreateTestOwner promotes a user to a materials owner.
func CreateTestOwner(t *testing.T, db *gorm.DB, userID uint) models.Owner {
	t.Helper()
	owner := models.Owner{
		UserID:   userID,
		Contact:  "B123",
		IsActive: true,
	}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("Failed to create owner for user %d: %v", userID, err)
	}
	return owner
}

// CreateTestMaterial creates a material, optionally held by an owner.
func CreateTestMaterial(t *testing.T, db *gorm.DB, title, lab string, ownerID *uint) models.Material {
	t.Helper()
	material := models.Material{
		MaterialTitle:  title,
		LabDestination: lab,
		OwnerID:        ownerID,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("Failed to create material %s: %v", title, err)
	}
	return material
}

// CreateTestMaterialAt creates a material with a fixed creation time,
// for the time-windowed aggregation tests.
func CreateTestMaterialAt(t *testing.T, db *gorm.DB, title, lab string, createdAt time.Time) models.Material {
	t.Helper()
	material := models.Material{
		MaterialTitle:  title,
		LabDestination: lab,
		CreatedAt:      createdAt,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("Failed to create material %s: %v", title, err)
	}
	return material
}

// CountNotifications returns the number of notifications held by a user.
func CountNotifications(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count notifications: %v", err)
	}
	return count
}
