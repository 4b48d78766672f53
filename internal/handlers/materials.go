package handlers

import (
	"fmt"

	"github.com/gazostheque/gazostheque/internal/middleware"
	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaterialHandler handles material routes
type MaterialHandler struct {
	DB    *gorm.DB
	Hooks *services.HookRunner
}

// CreateMaterial handles POST /materials/create/
// @Summary Register a material
// @Description Register a new gas cylinder or bottle in the inventory
// @Tags Materials
// @Accept json
// @Produce json
// @Param material body services.MaterialInput true "Material fields"
// @Success 200 {object} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials/create/ [post]
func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var input services.MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "createMaterial")
	}

	material, err := services.CreateMaterial(h.DB, h.Hooks, &input)
	if err != nil {
		return serviceError(c, err, "Material not found", "createMaterial")
	}

	return c.Status(fiber.StatusOK).JSON(material)
}

// ListMaterials handles GET /materials/
// @Summary List the inventory
// @Description List all materials with flattened owner identity fields
// @Tags Materials
// @Produce json
// @Success 200 {array} models.MaterialRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials/ [get]
func (h *MaterialHandler) ListMaterials(c *fiber.Ctx) error {
	rows, err := services.ListMaterials(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listMaterials")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetMaterial handles GET /materials/:id/
// @Summary Material detail
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} services.MaterialEventsDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/ [get]
func (h *MaterialHandler) GetMaterial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The material does not exist")
	}

	detail, err := services.MaterialEvents(h.DB, id)
	if err != nil {
		return serviceError(c, err, "The material does not exist", "getMaterial")
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// UpdateMaterial handles PUT /materials/:id/
// @Summary Update a material
// @Description Partial update; only admins or the material's owner may edit
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param material body services.MaterialInput true "Fields to change"
// @Success 200 {object} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/ [put]
func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The material does not exist")
	}

	if err := h.authorizeMutation(c, id); err != nil {
		return err
	}

	var input services.MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "updateMaterial")
	}

	material, err := services.UpdateMaterial(h.DB, h.Hooks, id, &input)
	if err != nil {
		return serviceError(c, err, "The material does not exist", "updateMaterial")
	}
	return c.Status(fiber.StatusOK).JSON(material)
}

// DeleteMaterial handles DELETE /materials/:id/
// @Summary Delete a material
// @Tags Materials
// @Param id path int true "Material ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /materials/{id}/ [delete]
func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The material does not exist")
	}

	if err := h.authorizeMutation(c, id); err != nil {
		return err
	}

	if err := services.DeleteMaterial(h.DB, id); err != nil {
		return serviceError(c, err, "The material does not exist", "deleteMaterial")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// authorizeMutation enforces the mutation gate: the principal must be
// staff, hold the admin role, or be the user behind the material's
// owner. A nil return means the mutation may proceed.
func (h *MaterialHandler) authorizeMutation(c *fiber.Ctx, materialID uint) error {
	user := middleware.Principal(c)
	if user == nil {
		return utils.ForbiddenResponse(c, "You do not have permission to edit this material")
	}
	if user.IsAdmin() {
		return nil
	}

	material, err := services.GetMaterial(h.DB, materialID)
	if err != nil {
		return serviceError(c, err, "The material does not exist", "authorizeMaterial")
	}

	if material.OwnerID != nil {
		owner, err := services.GetOwner(h.DB, *material.OwnerID)
		if err == nil && owner.UserID == user.UserID {
			return nil
		}
	}

	return utils.ForbiddenResponse(c, "You do not have permission to edit this material")
}

// MaterialsByOwner handles GET /materials/owner/:id/
// @Summary Materials held by one owner
// @Tags Materials
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {array} models.Material
// @Router /materials/owner/{id}/ [get]
func (h *MaterialHandler) MaterialsByOwner(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The owner does not exist")
	}

	materials, err := services.MaterialsByOwner(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "materialsByOwner")
	}
	return c.Status(fiber.StatusOK).JSON(materials)
}

// LatestMaterials handles GET /materials/latest/
// @Summary 4 most recently registered materials
// @Tags Materials
// @Produce json
// @Success 200 {array} models.Material
// @Router /materials/latest/ [get]
func (h *MaterialHandler) LatestMaterials(c *fiber.Ctx) error {
	materials, err := services.LatestMaterials(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "latestMaterials")
	}
	return c.Status(fiber.StatusOK).JSON(materials)
}

// MaterialEvents handles GET /material/:id/events/
// @Summary Material lifecycle detail
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} services.MaterialEventsDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /material/{id}/events/ [get]
func (h *MaterialHandler) MaterialEvents(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The material does not exist")
	}

	detail, err := services.MaterialEvents(h.DB, id)
	if err != nil {
		return serviceError(c, err, "The material does not exist", "materialEvents")
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// MaterialEventsLite handles GET /material/:id/events/lite/
// @Summary Abbreviated material lifecycle detail
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {array} services.MaterialEvent
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /material/{id}/events/lite/ [get]
func (h *MaterialHandler) MaterialEventsLite(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The material does not exist")
	}

	detail, err := services.MaterialEvents(h.DB, id)
	if err != nil {
		return serviceError(c, err, "The material does not exist", "materialEventsLite")
	}
	return c.Status(fiber.StatusOK).JSON(detail.Events)
}

// ListTags handles GET /materials/tags
// @Summary Distinct tag names
// @Tags Materials
// @Produce json
// @Success 200 {array} string
// @Router /materials/tags [get]
func (h *MaterialHandler) ListTags(c *fiber.Ctx) error {
	names, err := services.ListTagNames(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listTags")
	}
	return c.Status(fiber.StatusOK).JSON(names)
}

// SearchByTags handles GET /materials/search-by-tags?tag=...
// @Summary Materials carrying a tag
// @Tags Materials
// @Produce json
// @Param tag query string true "Tag name"
// @Success 200 {array} models.Material
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /materials/search-by-tags [get]
func (h *MaterialHandler) SearchByTags(c *fiber.Ctx) error {
	tag := c.Query("tag")
	if tag == "" {
		return utils.ErrorResponse(c, fmt.Sprintf("Query parameter %q is required", "tag"), fiber.StatusBadRequest, "searchByTags")
	}

	materials, err := services.SearchMaterialsByTag(h.DB, tag)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "searchByTags")
	}
	if materials == nil {
		materials = []models.Material{}
	}
	return c.Status(fiber.StatusOK).JSON(materials)
}
