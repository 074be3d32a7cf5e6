package handler

import (
	"encoding/base64"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrderReceipt renders the collection ticket: order details, the cash
// breakdown when paid in cash, and a QR of the order number for check-out
// at the counter.
func GetOrderReceipt(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Customer").
		Preload("Account").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(order.OrderNumber, 400); err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fiber.Map{
			"name":     item.Name,
			"price":    item.Price,
			"quantity": item.Quantity,
			"subtotal": item.Price * float64(item.Quantity),
			"notes":    item.Notes,
		})
	}

	response := fiber.Map{
		"orderNumber":   order.OrderNumber,
		"createdAt":     order.CreatedAt.Format("02/01/2006 15:04"),
		"status":        order.Status,
		"isExpress":     order.IsExpress,
		"items":         items,
		"total":         order.Total,
		"paymentMethod": order.PaymentMethod,
		"qrCode":        qrBase64,
	}
	if order.Customer != nil {
		response["customerName"] = order.Customer.FirstName + " " + order.Customer.LastName
		response["phone"] = order.Customer.Phone
	}
	if order.Account != nil {
		response["servedBy"] = order.Account.FullName
	}
	if order.CashPayment != nil {
		response["cashPayment"] = order.CashPayment
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
