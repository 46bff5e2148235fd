package validate

import (
	"errors"
	"fmt"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodes the JSON body into input and runs the struct validator.
// It writes the 400 response itself and returns false on failure.
func parseBody(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid input %s", err.Error()),
		})
	}
	if err := validate.Struct(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return true, nil
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}
