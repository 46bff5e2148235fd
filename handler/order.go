package handler

import (
	"errors"
	"pizzeria_kassa/config"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOrder)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	condition := database.DB.Model(&model.Order{})
	if filterInput.Date != "" {
		date, err := utils.ParseCustomDate(filterInput.Date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "date")
		}
		condition = condition.Where("date = ?", date)
	}
	if filterInput.From != "" || filterInput.To != "" {
		from, to, err := utils.ParseReportRange(filterInput.From, filterInput.To, time.Now().In(config.ShopLocation()))
		if err != nil {
			return utils.HandleError(c, err)
		}
		condition = condition.Where("date BETWEEN ? AND ?", from, to)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.IsOnline != nil {
		condition = condition.Where("is_online = ?", *filterInput.IsOnline)
	}
	if filterInput.CustomerID != nil {
		condition = condition.Where("customer_id = ?", *filterInput.CustomerID)
	}
	if filterInput.ReceiptNumber != "" {
		condition = condition.Where("receipt_number = ?", filterInput.ReceiptNumber)
	}

	var totalCount int64
	condition.Count(&totalCount)
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders model.Orders
	if err := condition.Preload("Customer").Preload("Lines").
		Order("date DESC, time DESC, id DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func loadOrder(db *gorm.DB, query string, arg interface{}) (*model.Order, error) {
	var order model.Order
	if err := db.Preload("Customer").Preload("Lines").Where(query, arg).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError(constants.NOT_FOUND_RECORDS, err)
		}
		return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
	}
	return &order, nil
}

func GetOrderById(c *fiber.Ctx) error {
	db := database.DB
	order, err := loadOrder(db, "id = ?", c.Locals("inputId").(int))
	if err != nil {
		return utils.HandleError(c, err)
	}
	summary, err := helper.SummarizeOrder(db, order)
	if err != nil {
		return utils.HandleError(c, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":   order,
		"summary": summary,
	})
}

// GetOrderBon returns the printable bon as plain text.
func GetOrderBon(c *fiber.Ctx) error {
	db := database.DB
	order, err := loadOrder(db, "id = ?", c.Locals("inputId").(int))
	if err != nil {
		return utils.HandleError(c, err)
	}
	summary, err := helper.SummarizeOrder(db, order)
	if err != nil {
		return utils.HandleError(c, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(helper.RenderBon(order, summary))
}

// CreateOrder stores a till order. Free-form lines without a product id are allowed here.
func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	req := helper.OrderRequest{Input: input, Now: time.Now()}
	if claim, ok := c.Locals("account").(model.TokenClaim); ok && claim.AccountId > 0 {
		req.CreatedBy = &claim.AccountId
	}

	order, summary, err := helper.CreateOrder(database.DB, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":   order,
		"summary": summary,
	})
}

func PreviewOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	summary, err := helper.PreviewOrder(database.DB, input, true)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"summary": summary,
		"bon":     summary.Render(),
	})
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	order, err := helper.UpdateOrderStatus(database.DB, uint(c.Locals("inputId").(int)), input.Status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func DeleteOrder(c *fiber.Ctx) error {
	id := uint(c.Locals("inputId").(int))
	deleted, err := helper.DeleteOrders(database.DB, []uint{id})
	if err != nil {
		return utils.HandleError(c, err)
	}
	if deleted == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("order not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}

func DeleteOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	deleted, err := helper.DeleteOrders(database.DB, input.IDs)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}

func RenumberReceipts(c *fiber.Ctx) error {
	result, err := helper.RenumberReceipts(database.DB)
	if err != nil {
		return utils.HandleError(c, utils.NewDatabaseError(constants.ERROR_EDIT, err))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
