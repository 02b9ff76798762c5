package handler

import (
	"errors"

	"ticket_server/constants"
	"ticket_server/database"
	"ticket_server/helper"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
)

// OpenWorkday starts a validator shift and hands back the verification key
// the device needs to check QR signatures offline.
func OpenWorkday(c *fiber.Ctx) error {
	validator := utils.CurrentUser(c)

	workday, err := helper.OpenWorkday(database.DB, validator)
	if errors.Is(err, helper.ErrWorkdayAlreadyOpen) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.WORKDAY_ALREADY_OPEN, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pubKey, err := helper.PublicKeyPEM()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"workday_id": workday.ID,
		"pub_key":    pubKey,
	})
}

// CloseWorkday reconciles the device's offline trips into the workday, seals
// it and mails the shift summary to the carrier.
func CloseWorkday(c *fiber.Ctx) error {
	workdayID := c.Locals("inputId").(string)
	input, _ := c.Locals("input").(model.LoadTripsInput)
	validator := utils.CurrentUser(c)

	results, err := helper.CloseWorkday(database.DB, workdayID, validator, input.Tickets)
	switch {
	case errors.Is(err, helper.ErrWorkdayNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.WORKDAY_NOT_FOUND, err)
	case errors.Is(err, helper.ErrWorkdayNotOwner):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCESS_FORBIDDEN, err)
	case errors.Is(err, helper.ErrWorkdayClosed):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.WORKDAY_ALREADY_CLOSED, err)
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sendCloseSummary(workdayID, validator, results)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.LOAD_SUCCESS,
		"results": results,
	})
}

func sendCloseSummary(workdayID string, validator *model.User, results []model.TripResult) {
	if validator.Company == nil || validator.Company.Email == "" {
		return
	}

	var workday model.Workday
	if err := database.DB.First(&workday, "id = ?", workdayID).Error; err != nil {
		return
	}

	redeemed, rejected := 0, 0
	for _, r := range results {
		if r.Code == constants.CheckStatuses[constants.CHECK_COMPLETED].Code {
			redeemed++
		} else {
			rejected++
		}
	}

	closed := ""
	if workday.Closed != nil {
		closed = workday.Closed.Format("2006-01-02 15:04:05")
	}
	utils.SendWorkdayCloseEmail(validator.Company.Email, utils.WorkdayCloseData{
		WorkdayId:     workday.ID,
		ValidatorName: validator.Name,
		Opened:        workday.Created.Format("2006-01-02 15:04:05"),
		Closed:        closed,
		TripCount:     len(results),
		Redeemed:      redeemed,
		Rejected:      rejected,
	})
}

// GetWorkday returns one workday with its trips.
func GetWorkday(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)

	var workday model.Workday
	err := database.DB.Preload("Trips").First(&workday, "id = ?", id).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.WORKDAY_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, workday)
}
