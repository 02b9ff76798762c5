package validate

import (
	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket checks the issuance payload. The idempotency token is the one
// hard requirement: without it the retry contract cannot hold.
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, err)
		}
		if input.Token == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TOKEN_NOT_FOUND, nil)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateTrip() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TripInput
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

func CheckTrip() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckTripInput
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

// LoadTrips requires the tickets field to be present; an empty list is still
// a valid upload.
func LoadTrips() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoadTripsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKETS_PAYLOAD_REQUIRED, err)
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

// FilterTickets reads the admin list filters from the query string.
func FilterTickets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterTicketInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BAD_REQUEST, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
