package handler

import (
	"errors"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func Me(c *fiber.Ctx) error {
	dataInfo, _, _, _ := helper.GetInfoAccountFromToken(c)
	if dataInfo.AccountId == 0 {
		return nil
	}

	var account model.Account
	if err := database.DB.First(&account, dataInfo.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	filterInput := new(model.FilterAccount)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Account{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", *filterInput.Active)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", *filterInput.Role)
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var accounts model.Accounts
	if err := condition.Order("id ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	response := &model.ResponseCustom{
		Rows:       accounts,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	account := new(model.Account)
	if err := copier.Copy(account, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	account.Password = hash
	account.Active = true

	if err := database.DB.Create(account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func ActiveAccount(c *fiber.Ctx) error {
	accountId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputActiveAccount").(model.ActiveAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse isActive fail"))
	}
	if claim, _ := c.Locals("account").(model.TokenClaim); claim.AccountId == uint(accountId) && !input.Active {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_EDIT, errors.New("cannot disable your own account"))
	}

	db := database.DB
	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	updates := map[string]interface{}{"active": input.Active}
	if !input.Active {
		updates["refresh_token"] = ""
	}
	if err := db.Model(&account).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	account.Active = input.Active
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
