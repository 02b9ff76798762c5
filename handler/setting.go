package handler

import (
	"errors"

	"ticket_server/constants"
	"ticket_server/database"
	"ticket_server/helper"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetSettings(c *fiber.Ctx) error {
	var settings []model.Setting
	if err := database.DB.Order("name").Find(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// CreateSetting adds a new setting and refreshes the in-process cache so the
// value takes effect without a restart.
func CreateSetting(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SettingInput)
	db := database.DB

	setting := model.Setting{
		Name:        input.Name,
		Value:       input.Value,
		Description: input.Description,
	}
	if err := db.Create(&setting).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SETTING_ALREADY_CREATED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if err := helper.Settings.Refresh(db); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, setting)
}

// UpdateSetting changes a setting's value by name and refreshes the cache.
func UpdateSetting(c *fiber.Ctx) error {
	name := c.Params("name")
	input := c.Locals("input").(model.SettingInput)
	db := database.DB

	var setting model.Setting
	err := db.Where("name = ?", name).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTING_NOT_FOUND, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setting.Value = input.Value
	if input.Description != "" {
		setting.Description = input.Description
	}
	if err := db.Save(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if err := helper.Settings.Refresh(db); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

// GetMainCompany exposes the operator identity printed on tickets.
func GetMainCompany(c *fiber.Ctx) error {
	name := helper.Settings.MainCompany()
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MAIN_COMPANY_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"name": name,
		"inn":  helper.Settings.MainCompanyInn(),
	})
}
