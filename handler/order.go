package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/helper"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateOrder persists a validated submission. The validate middleware has
// already gated fields, items, the total and (for cash) the tender, so this
// only resolves the customer and runs the transactional insert: order number
// allocation, order + items, and the customer's order stats, all or nothing.
func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("createOrderInput").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}
	claim, _ := c.Locals("claim").(model.TokenClaim)

	db := database.DB

	// Offline replay: a queued submission carries the clientRef it was created
	// under; the original order is returned instead of a duplicate insert.
	if input.ClientRef != nil && *input.ClientRef != "" {
		var existing model.Order
		err := db.Preload("Items").Preload("Customer").Preload("Account").
			Where("client_ref = ?", *input.ClientRef).First(&existing).Error
		if err == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	customer, err := helper.GetCustomerById(input.CustomerId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND,
			fmt.Errorf("customer %d does not exist", input.CustomerId))
	}

	var order model.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		orderNumber, err := helper.NextOrderNumber(tx)
		if err != nil {
			return err
		}

		order = model.Order{
			PublicId:      uuid.NewString(),
			OrderNumber:   orderNumber,
			ClientRef:     input.ClientRef,
			CustomerID:    customer.ID,
			AccountID:     claim.AccountId,
			Total:         *input.Total,
			PaymentMethod: input.PaymentMethod,
			IsExpress:     input.IsExpress,
			Notes:         input.Notes,
			Status:        model.StatusTodo,
		}

		if input.PaymentMethod == model.PaymentCash {
			details, _, err := helper.SettleCash(*input.Total, input.CashPayment)
			if err != nil {
				return err
			}
			order.CashPayment = details
		}

		for _, item := range input.Items {
			order.Items = append(order.Items, model.OrderItem{
				ServiceId: item.ServiceId,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Notes:     item.Notes,
			})
		}

		for _, note := range input.Stains {
			if note == "" {
				continue
			}
			order.Stains = append(order.Stains, model.StainPhoto{Note: note})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Customer stats move inside the same transaction so they cannot
		// drift from the actual order count.
		now := time.Now().UTC()
		return tx.Model(&model.Customer{}).Where("id = ?", customer.ID).
			Updates(map[string]interface{}{
				"total_orders":    gorm.Expr("total_orders + 1"),
				"last_order_date": now,
			}).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_CREATE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	order.Customer = customer
	BroadcastBoard(order.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Order{}).
		Preload("Items").
		Preload("Customer").
		Preload("Account")

	if raw := c.Query("status"); raw != "" {
		status, ok := model.ParseOrderStatus(raw)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS,
				fmt.Errorf("%q is not a recognized status", raw))
		}
		query = query.Where("status = ?", status)
	}
	if raw := c.Query("customerId"); raw != "" {
		customerId, err := strconv.Atoi(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		query = query.Where("customer_id = ?", customerId)
	}
	if raw := c.Query("paymentMethod"); raw != "" {
		method := strings.ToUpper(raw)
		if !helper.IsValidPaymentMethod(method) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_METHOD, nil)
		}
		query = query.Where("payment_method = ?", method)
	}
	if raw := c.Query("isExpress"); raw != "" {
		express, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "isExpress must be true or false", err)
		}
		query = query.Where("is_express = ?", express)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("order_number ILIKE ?", "%"+search+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var limitPtr, pagePtr *int
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		limit = utils.ClampLimit(limit)
		limitPtr = &limit
		page := c.QueryInt("page", 1)
		pagePtr = &page
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query, limitPtr, pagePtr).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      limitPtr,
		Page:       pagePtr,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Stains").
		Preload("Customer").
		Preload("Account").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus advances an order through the processing pipeline. The
// target status has been normalized by the validate middleware; here the
// forward-only rule is enforced and the set-once timestamps are recorded.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(int)
	target, ok := c.Locals("targetStatus").(model.OrderStatus)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated status"))
	}

	db := database.DB

	var order model.Order
	if err := db.Preload("Items").Preload("Customer").Preload("Account").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !order.Status.CanAdvanceTo(target) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BACKWARD_TRANSITION,
			fmt.Errorf("cannot move from %s to %s", order.Status, target))
	}

	now := time.Now().UTC()
	enteredCompleted := target == model.StatusCompleted && order.CompletedAt == nil
	updates := helper.StatusUpdates(order, target, now)

	if err := db.Model(&order).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	order.Status = target
	if v, ok := updates["completed_at"].(time.Time); ok {
		order.CompletedAt = &v
	}
	if v, ok := updates["picked_up_at"].(time.Time); ok {
		order.PickedUpAt = &v
	}

	BroadcastBoard(order.ID)

	if enteredCompleted {
		notifyOrderReady(order)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// notifyOrderReady mails the collection QR once the order is awaiting pickup.
func notifyOrderReady(order model.Order) {
	if order.Customer == nil || order.Customer.Email == nil || *order.Customer.Email == "" {
		return
	}

	qrBytes, err := utils.GenerateQRCode(order.OrderNumber, 400)
	if err != nil {
		qrBytes = nil
	}

	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("%d x %s", item.Quantity, item.Name))
	}

	utils.SendReadyNotificationEmail(*order.Customer.Email, utils.ReadyNotificationData{
		OrderNumber:  order.OrderNumber,
		CustomerName: order.Customer.FirstName,
		Items:        items,
		Total:        order.Total,
		QRCode:       qrBytes,
	})
}
