package handler

import (
	"pizzeria_kassa/config"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func shopNow() time.Time {
	return time.Now().In(config.ShopLocation())
}

// DailyReport returns the Z report of ?date=, today by default.
func DailyReport(c *fiber.Ctx) error {
	day := c.Query("date", shopNow().Format(utils.DateLayout))
	report, err := helper.GetDailyReport(database.DB, day)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func RangeReport(c *fiber.Ctx) error {
	from, to, err := utils.ParseReportRange(c.Query("from"), c.Query("to"), shopNow())
	if err != nil {
		return utils.HandleError(c, err)
	}
	db := database.DB
	days, err := helper.GetRevenueByDay(db, from, to)
	if err != nil {
		return utils.HandleError(c, err)
	}
	categories, err := helper.GetCategorySales(db, from, to)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var orders int64
	revenue, discount := decimal.Zero, decimal.Zero
	for _, d := range days {
		orders += d.Orders
		revenue = revenue.Add(decimal.NewFromFloat(d.Revenue))
		discount = discount.Add(decimal.NewFromFloat(d.Discount))
	}
	totalRevenue, _ := revenue.Round(2).Float64()
	totalDiscount, _ := discount.Round(2).Float64()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"from":       from,
		"to":         to,
		"days":       days,
		"categories": categories,
		"summary": fiber.Map{
			"orders":        orders,
			"revenue":       totalRevenue,
			"discountTotal": totalDiscount,
			"averageOrder":  utils.AverageOf(totalRevenue, orders),
		},
	})
}

func ProductReport(c *fiber.Ctx) error {
	from, to, err := utils.ParseReportRange(c.Query("from"), c.Query("to"), shopNow())
	if err != nil {
		return utils.HandleError(c, err)
	}
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	items, err := helper.GetProductSales(database.DB, from, to, limit)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"from":     from,
		"to":       to,
		"products": items,
	})
}

func TopCustomersReport(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	items, err := helper.GetTopCustomers(database.DB, limit)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}
