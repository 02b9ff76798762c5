package validate

import (
	"errors"

	"ticket_server/constants"
	"ticket_server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// GetByUUID checks the :key path parameter is a well-formed uuid and stores
// it in locals.
func GetByUUID(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if _, err := uuid.Parse(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, errors.New("params invalid"))
		}

		c.Locals("inputId", params)

		return c.Next()
	}
}
