package handler

import (
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats compares today with yesterday.
func GetDashboardStats(c *fiber.Ctx) error {
	stats, err := helper.GetDashboardStats(database.DB, shopNow())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
