package validate

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		input.Username = strings.TrimSpace(input.Username)

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if !utils.IsValidValueOfConstant(input.Role, constants.ROLE) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROLE_NOT_EXISTS, errors.New("role invalid"), "role")
		}

		var count int64
		database.DB.Model(&model.Account{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.USERNAME_EXISTS, nil, "username")
		}

		c.Locals("inputCreateAccount", input)
		return c.Next()
	}
}

func ActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ActiveAccountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals("inputActiveAccount", input)
		return c.Next()
	}
}
