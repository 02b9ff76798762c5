package handler

import (
	"errors"

	"ticket_server/constants"
	"ticket_server/database"
	"ticket_server/helper"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTicket issues (or re-returns) the ticket for an idempotency token and
// responds with the printable payload.
func CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTicketInput)
	seller := utils.CurrentUser(c)

	ticketType := input.TicketType
	if ticketType == 0 {
		ticketType = model.SINGLE
	}
	factory, ok := helper.TicketManagers[ticketType]
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_TYPE_NOT_FOUND, nil)
	}

	manager, err := factory(database.DB, seller, input.Token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	data, err := manager.MakeTicketData()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, data)
}

// CreateTrip redeems a single ticket from a validator device. The validator
// must have an open workday; the outcome code is part of the device contract.
func CreateTrip(c *fiber.Ctx) error {
	input := c.Locals("input").(model.TripInput)
	validator := utils.CurrentUser(c)

	workday := validator.CurrentWorkday(database.DB)
	if workday == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.WORKDAY_NOT_FOUND, nil)
	}

	status, operation, err := helper.RedeemTicket(database.DB, input, validator, workday)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishTripEvent(workday.ID, model.TripResult{
		TicketId: input.TicketId,
		Code:     status.Code,
		Detail:   status.Detail,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":      status.Code,
		"detail":    status.Detail,
		"operation": operation,
	})
}

// CheckTrip answers an inspector query without mutating ticket state.
func CheckTrip(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckTripInput)

	status, operation, err := helper.CheckTicket(database.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":      status.Code,
		"detail":    status.Detail,
		"operation": operation,
	})
}

// LoadTrips imports a batch of offline redemptions and reports a per-item
// outcome for each.
func LoadTrips(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoadTripsInput)
	validator := utils.CurrentUser(c)

	results, err := helper.LoadTrips(database.DB, input.Tickets, validator, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.LOAD_SUCCESS,
		"results": results,
	})
}

// Ping lets field devices verify connectivity and authentication. The id is a
// per-request correlation token for device-side logs.
func Ping(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.SUCCESS_RESPONSE,
		"id":      uuid.NewString(),
	})
}

// GetTicket returns one ticket with its redemption history.
func GetTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)

	var ticket model.Ticket
	err := database.DB.Preload("Seller.Company").Preload("Number").
		Preload("Operations").First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTickets lists tickets with optional filters and pagination.
func GetTickets(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.FilterTicketInput)
	db := database.DB

	query := db.Model(&model.Ticket{})
	if input.TicketTypeId > 0 {
		query = query.Where("ticket_type_id = ?", input.TicketTypeId)
	}
	if input.Status > 0 {
		query = query.Where("status = ?", input.Status)
	}
	if input.SellerId != "" {
		query = query.Where("seller_id = ?", input.SellerId)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tickets []model.Ticket
	query = utils.ApplyPagination(query, input.Limit, input.Page)
	if err := query.Order("created DESC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tickets,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}
