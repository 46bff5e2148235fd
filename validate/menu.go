package validate

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func optionalId(c *fiber.Ctx, key string) (int, error) {
	if key == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(c.Params(key))
	if err != nil || id <= 0 {
		return 0, errors.New(key + " invalid")
	}
	return id, nil
}

// Category validates a category body; key names the id param on edit routes.
func Category(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := optionalId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.CategoryInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		input.Name = strings.TrimSpace(input.Name)
		if !utils.IsValidValueOfConstant(input.Kind, constants.CATEGORY_KIND) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CATEGORY_KIND_NOT_EXISTS, errors.New("kind invalid"), "kind")
		}

		c.Locals("inputId", id)
		c.Locals("inputCategory", input)
		return c.Next()
	}
}

func Product(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := optionalId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.ProductInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		input.Name = strings.TrimSpace(input.Name)

		c.Locals("inputId", id)
		c.Locals("inputProduct", input)
		return c.Next()
	}
}

func MenuExtra(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := optionalId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.MenuExtraInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if !utils.IsValidValueOfConstant(input.Type, constants.EXTRA_TYPE) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EXTRA_TYPE_NOT_EXISTS, errors.New("type invalid"), "type")
		}

		c.Locals("inputId", id)
		c.Locals("inputMenuExtra", input)
		return c.Next()
	}
}

func UploadProductImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := optionalId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		file, err := c.FormFile("image")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "image")
		}
		if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("file is not an image"), "image")
		}

		c.Locals("inputId", id)
		c.Locals("inputImage", file)
		return c.Next()
	}
}
