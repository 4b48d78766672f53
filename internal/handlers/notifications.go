package handlers

import (
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotificationHandler handles notification routes
type NotificationHandler struct {
	DB *gorm.DB
}

// ListNotifications handles GET /notifications/
// @Summary List all notifications
// @Tags Notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications/ [get]
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := services.ListNotifications(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listNotifications")
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

// CreateNotification handles POST /notifications/
// @Summary Record a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body services.NotificationInput true "Notification fields"
// @Success 200 {object} models.Notification
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /notifications/ [post]
func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	var input services.NotificationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "createNotification")
	}

	notification, err := services.CreateNotification(h.DB, &input)
	if err != nil {
		return serviceError(c, err, "The notification does not exist", "createNotification")
	}
	return c.Status(fiber.StatusOK).JSON(notification)
}

// NotificationsByUser handles GET /notifications/:id/
// @Summary Notifications for one user
// @Tags Notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Notification
// @Router /notifications/{id}/ [get]
func (h *NotificationHandler) NotificationsByUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The user does not exist")
	}

	notifications, err := services.NotificationsByUser(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "notificationsByUser")
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

// ImportantNotifications handles GET /notifications/important/:id/
// @Summary High-priority notifications for one user
// @Tags Notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Notification
// @Router /notifications/important/{id}/ [get]
func (h *NotificationHandler) ImportantNotifications(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "The user does not exist")
	}

	notifications, err := services.ImportantNotificationsByUser(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "importantNotifications")
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}
