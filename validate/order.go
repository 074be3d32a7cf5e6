package validate

import (
	"errors"
	"fmt"
	"strings"

	"laundry_os/constants"
	"laundry_os/helper"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder parses and gates an order submission. Everything that can be
// checked without touching the store happens here: required fields, payment
// method, per-item rules, the item-sum/total match, and — for cash — that the
// tender actually covers the total. The handler only does the persistence.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_FIELD, err)
		}

		if input.CustomerId == 0 || len(input.Items) == 0 || input.Total == nil || input.PaymentMethod == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_FIELD,
				errors.New("customerId, items, total and paymentMethod are required"))
		}

		input.PaymentMethod = strings.ToUpper(strings.TrimSpace(input.PaymentMethod))
		if !helper.IsValidPaymentMethod(input.PaymentMethod) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_METHOD,
				fmt.Errorf("paymentMethod %q is not one of CASH, CARD, ON_COLLECTION", input.PaymentMethod))
		}

		for _, item := range input.Items {
			if err := helper.ValidateItem(item); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_ITEM, err)
			}
		}

		if *input.Total < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_FIELD,
				errors.New("total must not be negative"))
		}

		if !helper.TotalMatches(input.Items, *input.Total) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TOTAL_MISMATCH,
				fmt.Errorf("item sum %.2f does not match total %.2f", helper.ItemsTotal(input.Items), *input.Total))
		}

		if input.PaymentMethod == model.PaymentCash {
			_, result, err := helper.SettleCash(*input.Total, input.CashPayment)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DENOMINATION, err)
			}
			if !result.Sufficient {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INSUFFICIENT_TENDER,
					fmt.Errorf("tendered %.2f against total %.2f", result.TotalPaid, *input.Total))
			}
		}

		c.Locals("createOrderInput", input)
		return c.Next()
	}
}

// UpdateOrderStatus normalizes the requested status (case-insensitive on the
// wire) and rejects values outside the closed set before the handler runs.
func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, err)
		}

		status, ok := model.ParseOrderStatus(input.Status)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS,
				fmt.Errorf("%q is not a recognized status", input.Status))
		}

		c.Locals("targetStatus", status)
		return c.Next()
	}
}
