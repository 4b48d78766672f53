package services

import (
	"errors"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// UserInput is the create/partial-update payload for a user.
type UserInput struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
	IsStaff   *bool   `json:"is_staff"`
}

// ListUsers returns all users.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user by id.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches one user by its login key.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account.
func CreateUser(db *gorm.DB, in *UserInput) (*models.User, error) {
	fields := make(map[string]string)
	if in.Email == nil || *in.Email == "" {
		fields["email"] = "This field is required."
	}
	if in.Role != nil && *in.Role != models.RoleAdmin && *in.Role != models.RoleUser {
		fields["role"] = "Value must be one of: admin, user."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := GetUserByEmail(db, *in.Email); err == nil {
		return nil, &ValidationError{Fields: map[string]string{"email": "A user with this email already exists."}}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	user := models.User{
		Email:    *in.Email,
		Role:     models.RoleUser,
		IsActive: true,
	}
	applyUserInput(&user, in)

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to an account.
func UpdateUser(db *gorm.DB, id uint, in *UserInput) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && *in.Role != models.RoleAdmin && *in.Role != models.RoleUser {
		return nil, &ValidationError{Fields: map[string]string{"role": "Value must be one of: admin, user."}}
	}
	if in.Email != nil && *in.Email == "" {
		return nil, &ValidationError{Fields: map[string]string{"email": "This field is required."}}
	}

	applyUserInput(user, in)

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func applyUserInput(user *models.User, in *UserInput) {
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		user.IsStaff = *in.IsStaff
	}
}

// SetProfilePicture records the stored picture path on the account.
func SetProfilePicture(db *gorm.DB, id uint, path string) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	user.ProfilePic = path
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FormattedUser is the session payload: the user's details plus the
// owner link when the user backs one.
type FormattedUser struct {
	UserID       uint   `json:"user_id"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`
	IsStaff      bool   `json:"is_staff"`
	Email        string `json:"email"`
	ProfilePic   string `json:"profil_pic"`
	OwnerID      *uint  `json:"owner_id,omitempty"`
	OwnerContact string `json:"owner_contact,omitempty"`
}

// FormatUser assembles the session payload for a user.
func FormatUser(db *gorm.DB, user *models.User) (*FormattedUser, error) {
	formatted := &FormattedUser{
		UserID:     user.UserID,
		LastName:   user.LastName,
		FirstName:  user.FirstName,
		Role:       user.Role,
		IsActive:   user.IsActive,
		IsStaff:    user.IsStaff,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
	}

	owner, err := GetOwnerByUser(db, user.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return formatted, nil
		}
		return nil, err
	}

	formatted.OwnerID = &owner.OwnerID
	formatted.OwnerContact = owner.Contact
	return formatted, nil
}
