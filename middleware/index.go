package middleware

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/utils"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		// browsers cannot set headers on a websocket upgrade
		token = c.Query("token")
	}
	return token
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireRole lets staff accounts with one of roles through and stores their claim in Locals("account").
// Must run after Protected.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _, _, _ := helper.GetInfoAccountFromToken(c)
		if claim.AccountId == 0 {
			// response already written
			return nil
		}
		if len(roles) > 0 && !slices.Contains(roles, claim.Role) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role "+claim.Role+" not allowed"))
		}
		c.Locals("account", claim)
		return c.Next()
	}
}

func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		token, err := helper.ParseToken(tokenString)
		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}

func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, customer := helper.GetInfoCustomerFromToken(c)

		if claim.CustomerId == 0 {
			c.Locals("customerId", uint(0))
			return c.Next()
		}

		c.Locals("customerId", claim.CustomerId)
		if customer.ID > 0 {
			c.Locals("customer", &customer)
		}

		return c.Next()
	}
}

// CustomerRequired rejects guests. Must run after OptionalAuth.
func CustomerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, _ := c.Locals("customerId").(uint); id == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("customer token required"))
		}
		return c.Next()
	}
}

