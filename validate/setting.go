package validate

import (
	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
