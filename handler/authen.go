package handler

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func issueTokens(claim model.TokenClaim) (model.TokenData, error) {
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	accountModel, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if accountModel == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
	}
	if !helper.CheckPasswordHash(input.Password, accountModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}
	if !accountModel.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokens, err := issueTokens(model.TokenClaim{
		AccountId: accountModel.ID,
		Username:  accountModel.Username,
		Role:      accountModel.Role,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountModel.RefreshToken = tokens.RefreshToken
	database.DB.Model(accountModel).Update("refresh_token", tokens.RefreshToken)

	setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	return c.JSON(fiber.Map{
		"message":     "login success",
		"accessToken": tokens.AccessToken,
		"account": fiber.Map{
			"id":       accountModel.ID,
			"username": accountModel.Username,
			"role":     accountModel.Role,
		},
	})
}

// RefreshToken rotates the staff token pair. The refresh token must be the
// one stored at the last login or refresh.
func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	accountIdFloat, ok := claims["accountId"].(float64)
	if !ok || accountIdFloat == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid accountId in payload"})
	}

	var account model.Account
	if err := database.DB.First(&account, uint(accountIdFloat)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account not found"})
	}
	if !account.Active || account.RefreshToken != refreshCookie {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Refresh token revoked"})
	}

	tokens, err := issueTokens(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate access token"})
	}
	database.DB.Model(&account).Update("refresh_token", tokens.RefreshToken)

	setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	return c.JSON(fiber.Map{
		"message":     "refresh success",
		"accessToken": tokens.AccessToken,
	})
}

func Logout(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	database.DB.Model(&model.Account{}).Where("id = ?", claim.AccountId).Update("refresh_token", "")
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
