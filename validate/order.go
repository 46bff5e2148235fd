package validate

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder validates the shape of an order body. Business rules such as
// an empty line list or an unknown customer are left to the order service.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if input.PaymentMethod != "" && !utils.IsValidValueOfConstant(input.PaymentMethod, constants.PAYMENT_METHOD) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PAYMENT_METHOD_NOT_EXISTS, errors.New("paymentMethod invalid"), "paymentMethod")
		}
		if input.DeliveryTime != nil {
			if _, err := time.Parse("15:04", *input.DeliveryTime); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("deliveryTime must be HH:MM"), "deliveryTime")
			}
		}
		if input.DiscountPct != nil && (*input.DiscountPct < 0 || *input.DiscountPct > 100) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("discountPct must be between 0 and 100"), "discountPct")
		}

		c.Locals("inputCreateOrder", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := optionalId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.UpdateOrderStatusInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ORDER_STATUS_NOT_EXISTS, errors.New("status invalid"), "status")
		}

		c.Locals("inputId", id)
		c.Locals("inputOrderStatus", input)
		return c.Next()
	}
}
