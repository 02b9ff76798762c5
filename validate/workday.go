package validate

import (
	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
)

// CloseWorkday parses the reconciliation payload. An empty tickets list is a
// legitimate close (no offline trips to upload); a missing body or a body
// without the tickets field is not.
func CloseWorkday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoadTripsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, err)
		}
		if input.Tickets == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKETS_PAYLOAD_REQUIRED, nil)
		}
		for _, item := range input.Tickets {
			if err := validate.Struct(item); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		}
		c.Locals("input", input)
		return c.Next()
	}
}
