package validate

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// checkCustomerInput runs the shared phone/email checks. id excludes the customer being edited.
func checkCustomerInput(c *fiber.Ctx, input *model.CustomerInput, id *uint) (bool, error) {
	input.Phone = utils.NormalizePhone(input.Phone)
	if !utils.IsValidPhone(input.Phone) {
		return false, utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("phone number invalid"), "phone")
	}
	exists, err := helper.CheckByPhoneNumberCustomer(database.DB, input.Phone, id)
	if err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if exists {
		return false, utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.PHONE_NUMBER_EXISTS, nil, "phone")
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			input.Email = nil
		} else {
			input.Email = &email
			exists, err := helper.CheckByEmailCustomer(database.DB, email, id)
			if err != nil {
				return false, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			if exists {
				return false, utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, nil, "email")
			}
		}
	}
	return true, nil
}

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if ok, err := checkCustomerInput(c, &input, nil); !ok {
			return err
		}

		c.Locals("inputCreateCustomer", input)
		return c.Next()
	}
}

func EditCustomer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.CustomerInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		customerId := uint(id)
		if ok, err := checkCustomerInput(c, &input, &customerId); !ok {
			return err
		}

		c.Locals("inputId", id)
		c.Locals("inputEditCustomer", input)
		return c.Next()
	}
}

func RegisterCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterCustomerInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))
		input.Phone = utils.NormalizePhone(input.Phone)
		if !utils.IsValidPhone(input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("phone number invalid"), "phone")
		}

		existing, err := helper.GetCustomerByEmail(input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, nil, "email")
		}

		c.Locals("inputRegisterCustomer", input)
		return c.Next()
	}
}

func CustomerLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerLoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		c.Locals("inputCustomerLogin", input)
		return c.Next()
	}
}
