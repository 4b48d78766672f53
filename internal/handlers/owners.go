package handlers

import (
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OwnerHandler handles owner routes
type OwnerHandler struct {
	DB *gorm.DB
}

// ListOwners handles GET /owners/
// @Summary List owners
// @Tags Owners
// @Produce json
// @Success 200 {array} models.Owner
// @Router /owners/ [get]
func (h *OwnerHandler) ListOwners(c *fiber.Ctx) error {
	owners, err := services.ListOwners(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listOwners")
	}
	return c.Status(fiber.StatusOK).JSON(owners)
}

// CreateOwner handles POST /owners/
// @Summary Promote a user to hold materials
// @Tags Owners
// @Accept json
// @Produce json
// @Param owner body services.OwnerInput true "Owner fields"
// @Success 200 {object} models.Owner
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /owners/ [post]
func (h *OwnerHandler) CreateOwner(c *fiber.Ctx) error {
	var input services.OwnerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "createOwner")
	}

	owner, err := services.CreateOwner(h.DB, &input)
	if err != nil {
		return serviceError(c, err, "The owner does not exist", "createOwner")
	}
	return c.Status(fiber.StatusOK).JSON(owner)
}

// GetOwner handles GET /owners/:id/
// @Summary Owner detail
// @Tags Owners
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} models.Owner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /owners/{id}/ [get]
func (h *OwnerHandler) GetOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The owner does not exist")
	}

	owner, err := services.GetOwner(h.DB, id)
	if err != nil {
		return serviceError(c, err, "The owner does not exist", "getOwner")
	}
	return c.Status(fiber.StatusOK).JSON(owner)
}

// UpdateOwner handles PUT /owners/:id/
// @Summary Update an owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Param owner body services.OwnerInput true "Fields to change"
// @Success 200 {object} models.Owner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /owners/{id}/ [put]
func (h *OwnerHandler) UpdateOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The owner does not exist")
	}

	var input services.OwnerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "updateOwner")
	}

	owner, err := services.UpdateOwner(h.DB, id, &input)
	if err != nil {
		return serviceError(c, err, "The owner does not exist", "updateOwner")
	}
	return c.Status(fiber.StatusOK).JSON(owner)
}

// DeleteOwner handles DELETE /owners/:id/
// @Summary Delete an owner and every material it holds
// @Description Destructive: the owner's materials are removed in the same transaction
// @Tags Owners
// @Param id path int true "Owner ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /owners/{id}/ [delete]
func (h *OwnerHandler) DeleteOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The owner does not exist")
	}

	if err := services.DeleteOwner(h.DB, id); err != nil {
		return serviceError(c, err, "The owner does not exist", "deleteOwner")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ActiveOwnersLite handles GET /active_owners/lite/
// @Summary Abbreviated active-owner list
// @Tags Owners
// @Produce json
// @Success 200 {array} models.OwnerLite
// @Router /active_owners/lite/ [get]
func (h *OwnerHandler) ActiveOwnersLite(c *fiber.Ctx) error {
	rows, err := services.ActiveOwnersLite(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "activeOwnersLite")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
