package handler

import (
	"errors"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/helper"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetServices(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.ServiceItem{})
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var services []model.ServiceItem
	if err := query.Order("name asc").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

func CreateService(c *fiber.Ctx) error {
	input, ok := c.Locals("createServiceInput").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	service := model.ServiceItem{
		Name:              input.Name,
		Slug:              helper.GenerateUniqueServiceSlug(db, input.Name),
		UnitPrice:         *input.UnitPrice,
		ExpressMultiplier: 1.5,
		Active:            true,
	}
	if input.ExpressMultiplier != nil {
		service.ExpressMultiplier = *input.ExpressMultiplier
	}

	if err := db.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func EditService(c *fiber.Ctx) error {
	serviceId, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("editServiceInput").(model.EditServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var service model.ServiceItem
	if err := db.First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil && *input.Name != service.Name {
		service.Name = *input.Name
		service.Slug = helper.GenerateUniqueServiceSlug(db, *input.Name)
	}
	if input.UnitPrice != nil {
		service.UnitPrice = *input.UnitPrice
	}
	if input.ExpressMultiplier != nil {
		service.ExpressMultiplier = *input.ExpressMultiplier
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := db.Save(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func DeleteService(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	// Soft-disable rather than remove: old orders keep referencing the row.
	if err := database.DB.Model(&model.ServiceItem{}).
		Where("id IN ?", input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"disabled": len(input.IDs)})
}
