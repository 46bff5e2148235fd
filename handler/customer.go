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
	"gorm.io/gorm"
)

func GetCustomer(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterCustomer)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	condition := db.Model(&model.Customer{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(street) LIKE ?", key, key, key)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}
	if filterInput.Phone != "" {
		condition = condition.Where("phone LIKE ?", "%"+utils.NormalizePhone(filterInput.Phone)+"%")
	}
	if filterInput.Locality != "" {
		condition = condition.Where("LOWER(locality) = ?", strings.ToLower(filterInput.Locality))
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var customers model.Customers
	if err := condition.Order("name ASC, id ASC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)
	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// GetCustomerByPhone is the till's caller lookup.
func GetCustomerByPhone(c *fiber.Ctx) error {
	customer, err := helper.GetCustomerByPhone(database.DB, c.Params("phone"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("no customer with this phone number"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCustomer").(model.CustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	customer := new(model.Customer)
	if err := copier.Copy(customer, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	customer.IsActive = true
	if err := database.DB.Create(customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func EditCustomer(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputEditCustomer").(model.CustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if err := copier.Copy(&customer, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// DeleteCustomers deactivates customers that have orders and removes the others.
func DeleteCustomers(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var deactivated, deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var withOrders []uint
		if err := tx.Model(&model.Order{}).Where("customer_id IN ?", input.IDs).
			Distinct().Pluck("customer_id", &withOrders).Error; err != nil {
			return err
		}
		if len(withOrders) > 0 {
			res := tx.Model(&model.Customer{}).Where("id IN ?", withOrders).Update("is_active", false)
			if res.Error != nil {
				return res.Error
			}
			deactivated = res.RowsAffected
		}
		q := tx.Where("id IN ?", input.IDs)
		if len(withOrders) > 0 {
			q = q.Where("id NOT IN ?", withOrders)
		}
		res := q.Unscoped().Delete(&model.Customer{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted, "deactivated": deactivated})
}

// RegisterCustomer creates a web account. A till-created customer with the
// same phone number and no login yet is upgraded instead.
func RegisterCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegisterCustomer").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	customer, err := helper.GetCustomerByPhone(db, input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer != nil && customer.Password != "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.PHONE_NUMBER_EXISTS, nil, "phone")
	}
	if customer == nil {
		customer = &model.Customer{IsActive: true}
	}
	if err := copier.CopyWithOption(customer, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	customer.Email = &input.Email
	customer.Password = hash

	if err := db.Save(customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func CustomerLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCustomerLogin").(model.CustomerLoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil || customer.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not registered"))
	}
	if !helper.CheckPasswordHash(input.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}
	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokens, err := issueTokens(model.TokenClaim{CustomerId: customer.ID, Username: input.Email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"customer":     customer,
	})
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("guest"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func GetMyOrders(c *fiber.Ctx) error {
	customerId, _ := c.Locals("customerId").(uint)

	filterInput := new(model.Pagination)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	condition := database.DB.Model(&model.Order{}).Where("customer_id = ?", customerId)

	var totalCount int64
	condition.Count(&totalCount)
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders model.Orders
	if err := condition.Preload("Lines").Order("date DESC, time DESC, id DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}
