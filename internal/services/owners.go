package services

import (
	"errors"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// OwnerInput is the create/partial-update payload for an owner.
type OwnerInput struct {
	UserID   *uint   `json:"user"`
	Contact  *string `json:"contact"`
	IsActive *bool   `json:"is_active"`
}

// ListOwners returns all owners.
func ListOwners(db *gorm.DB) ([]models.Owner, error) {
	var owners []models.Owner
	if err := db.Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// GetOwner fetches one owner by id.
func GetOwner(db *gorm.DB, id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := db.First(&owner, "owner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// GetOwnerByUser fetches the owner backed by the given user, or
// ErrNotFound when the user holds no materials role.
func GetOwnerByUser(db *gorm.DB, userID uint) (*models.Owner, error) {
	var owner models.Owner
	if err := db.First(&owner, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// CreateOwner promotes a user to hold materials. One user can back at
// most one owner.
func CreateOwner(db *gorm.DB, in *OwnerInput) (*models.Owner, error) {
	if in.UserID == nil {
		return nil, &ValidationError{Fields: map[string]string{"user": "This field is required."}}
	}

	var user models.User
	if err := db.First(&user, "user_id = ?", *in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Fields: map[string]string{"user": "User does not exist."}}
		}
		return nil, err
	}

	if _, err := GetOwnerByUser(db, *in.UserID); err == nil {
		return nil, &ValidationError{Fields: map[string]string{"user": "User already backs an owner."}}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	owner := models.Owner{UserID: *in.UserID, IsActive: true}
	if in.Contact != nil {
		owner.Contact = *in.Contact
	}
	if in.IsActive != nil {
		owner.IsActive = *in.IsActive
	}

	if err := db.Create(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// UpdateOwner applies a partial update. The user link is immutable.
func UpdateOwner(db *gorm.DB, id uint, in *OwnerInput) (*models.Owner, error) {
	owner, err := GetOwner(db, id)
	if err != nil {
		return nil, err
	}

	if in.Contact != nil {
		owner.Contact = *in.Contact
	}
	if in.IsActive != nil {
		owner.IsActive = *in.IsActive
	}

	if err := db.Save(owner).Error; err != nil {
		return nil, err
	}
	return owner, nil
}

// DeleteOwner removes an owner and, deliberately and irreversibly,
// every material it holds. The cascade is explicit in the transaction
// rather than left to per-dialect foreign key behavior.
func DeleteOwner(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, "owner_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("owner_id = ?", id).Delete(&models.Material{}).Error; err != nil {
			return err
		}

		return tx.Delete(&owner).Error
	})
}

// ActiveOwnersLite returns the abbreviated projection of active
// owners joined with their user identity.
func ActiveOwnersLite(db *gorm.DB) ([]models.OwnerLite, error) {
	var rows []models.OwnerLite
	err := db.Table("owners").
		Select(`owners.owner_id, owners.contact,
			users.first_name, users.last_name, users.email`).
		Joins("JOIN users ON users.user_id = owners.user_id").
		Where("owners.is_active = ?", true).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
