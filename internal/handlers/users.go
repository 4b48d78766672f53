package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gazostheque/gazostheque/internal/middleware"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserHandler handles user and session routes
type UserHandler struct {
	DB        *gorm.DB
	UploadDir string
}

// ListUsers handles GET /users/
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listUsers")
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// CreateUser handles POST /users/
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body services.UserInput true "User fields"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/ [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "createUser")
	}

	user, err := services.CreateUser(h.DB, &input)
	if err != nil {
		return serviceError(c, err, "The user does not exist", "createUser")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUser handles GET /users/:id/
// @Summary User detail
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/ [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The user does not exist")
	}

	user, err := services.GetUser(h.DB, id)
	if err != nil {
		return serviceError(c, err, "The user does not exist", "getUser")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser handles PUT /users/:id/
// @Summary Update a user
// @Description Users may edit themselves; admins may edit anyone
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body services.UserInput true "Fields to change"
// @Success 200 {object} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/ [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The user does not exist")
	}

	principal := middleware.Principal(c)
	if principal == nil || (!principal.IsAdmin() && principal.UserID != id) {
		return utils.ForbiddenResponse(c, "You do not have permission to edit this user")
	}

	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "updateUser")
	}

	// Only admins may change role or staff flags.
	if !principal.IsAdmin() {
		input.Role = nil
		input.IsStaff = nil
	}

	user, err := services.UpdateUser(h.DB, id, &input)
	if err != nil {
		return serviceError(c, err, "The user does not exist", "updateUser")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UploadProfilePicture handles POST /users/upload_pictures/:id/
// @Summary Upload a profile picture
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param id path int true "User ID"
// @Param picture formData file true "Picture file"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/upload_pictures/{id}/ [post]
func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The user does not exist")
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return utils.ErrorResponse(c, "Multipart field 'picture' is required", fiber.StatusBadRequest, "uploadPicture")
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadPicture")
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	dest := filepath.Join(h.UploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadPicture")
	}

	user, err := services.SetProfilePicture(h.DB, id, dest)
	if err != nil {
		// The row lookup failed after the file landed; drop the orphan.
		_ = os.Remove(dest)
		return serviceError(c, err, "The user does not exist", "uploadPicture")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// Session handles GET /session/
// @Summary Current principal with owner link
// @Tags Users
// @Produce json
// @Success 200 {object} services.FormattedUser
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /session/ [get]
func (h *UserHandler) Session(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return utils.ForbiddenResponse(c, "Not logged in")
	}

	formatted, err := services.FormatUser(h.DB, principal)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "session")
	}
	return c.Status(fiber.StatusOK).JSON(formatted)
}
