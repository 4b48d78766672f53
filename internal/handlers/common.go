package handlers

import (
	"errors"
	"strconv"

	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// parseID extracts a positive integer id from a route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// serviceError translates a service-layer error into the matching
// HTTP response: validation detail as 400, not-found as 404,
// everything else as 500 with the detail hidden behind the type tag.
func serviceError(c *fiber.Ctx, err error, notFoundMessage, errorType string) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return utils.ValidationErrorResponse(c, validation.Fields)
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
