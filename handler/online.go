package handler

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateOnlineOrder takes a web shop order. Logged-in customers order on
// their own record; guests must send a customer block. Prices always come
// from the menu and the discount from configuration.
func CreateOnlineOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input.CustomerID = nil
	input.DiscountPct = nil
	if customerId, _ := c.Locals("customerId").(uint); customerId > 0 {
		input.CustomerID = &customerId
		input.Customer = nil
	} else if input.Customer == nil {
		return utils.HandleError(c, utils.NewOrderError(constants.ORDER_INVALID_CUSTOMER, errors.New("guest orders need name and phone")))
	}
	// the web shop offers cash at the door or online payment only
	switch input.PaymentMethod {
	case "", constants.PAYMENT_CASH, constants.PAYMENT_ONLINE:
	default:
		input.PaymentMethod = constants.PAYMENT_ONLINE
	}

	order, summary, err := helper.CreateOrder(database.DB, helper.OrderRequest{
		Input:    input,
		IsOnline: true,
		Now:      time.Now(),
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"publicCode":    order.PublicCode,
		"receiptNumber": order.ReceiptNumber,
		"status":        order.Status,
		"total":         order.Total,
		"summary":       summary,
	})
}

// GetOnlineOrder is the order tracking page of the web shop.
func GetOnlineOrder(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	db := database.DB
	order, err := loadOrder(db, "public_code = ?", code)
	if err != nil {
		return utils.HandleError(c, err)
	}
	summary, err := helper.SummarizeOrder(db, order)
	if err != nil {
		return utils.HandleError(c, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicCode":    order.PublicCode,
		"receiptNumber": order.ReceiptNumber,
		"date":          order.Date,
		"time":          order.Time,
		"deliveryTime":  order.DeliveryTime,
		"status":        order.Status,
		"isTakeOut":     order.IsTakeOut,
		"total":         order.Total,
		"summary":       summary,
	})
}
