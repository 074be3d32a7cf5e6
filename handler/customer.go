package handler

import (
	"errors"
	"strings"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/helper"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerInput, ok := c.Locals("createCustomerInput").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil, "general")
	}

	isDuplicatePhone, err := helper.CheckByPhoneNumberCustomer(customerInput.Phone, nil)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "phone")
	}
	if isDuplicatePhone {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_PHONE, nil, "phone")
	}

	if customerInput.Email != nil && *customerInput.Email != "" {
		isDuplicateEmail, err := helper.CheckByEmailCustomer(*customerInput.Email, nil)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
		}
		if isDuplicateEmail {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_EMAIL, nil, "email")
		}
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &customerInput)
	newCustomer.IsActive = true

	if err := db.Create(&newCustomer).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			if strings.Contains(err.Error(), "phone") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_PHONE, nil, "phone")
			}
			if strings.Contains(err.Error(), "email") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_EMAIL, nil, "email")
			}
		}
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err, "general")
	}

	if newCustomer.Email != nil && *newCustomer.Email != "" {
		utils.SendWelcomeEmail(*newCustomer.Email, newCustomer.FirstName)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func GetCustomers(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Customer{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?", like, like, like)
	}
	if phone := c.Query("phone"); phone != "" {
		query = query.Where("phone = ?", phone)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var limitPtr, pagePtr *int
	if limit := c.QueryInt("limit", 0); limit > 0 {
		clamped := utils.ClampLimit(limit)
		limitPtr = &clamped
		page := c.QueryInt("page", 1)
		pagePtr = &page
	}

	var customers model.Customers
	if err := utils.ApplyPagination(query, limitPtr, pagePtr).
		Order("created_at desc").
		Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      limitPtr,
		Page:       pagePtr,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId, _ := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}

	// Recent orders shown on the customer card.
	var orders []model.Order
	database.DB.Preload("Items").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Limit(10).
		Find(&orders)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customer":     customer,
		"recentOrders": orders,
	})
}

func EditCustomer(c *fiber.Ctx) error {
	customerId, _ := c.Locals("inputId").(int)
	customerInput, ok := c.Locals("editCustomerInput").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	excludeId := customer.ID
	if customerInput.Phone != nil {
		duplicate, err := helper.CheckByPhoneNumberCustomer(*customerInput.Phone, &excludeId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if duplicate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_PHONE, nil, "phone")
		}
	}
	if customerInput.Email != nil && *customerInput.Email != "" {
		duplicate, err := helper.CheckByEmailCustomer(*customerInput.Email, &excludeId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if duplicate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.DUPLICATE_EMAIL, nil, "email")
		}
	}

	copier.CopyWithOption(&customer, &customerInput, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
