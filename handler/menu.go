package handler

import (
	"errors"
	"mime/multipart"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetMenu(c *fiber.Ctx) error {
	menu, err := helper.GetMenu(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

func GetMenuSection(c *fiber.Ctx) error {
	section, err := helper.GetMenuSection(database.DB, c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, section)
}

// Category

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCategory").(model.CategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	category := new(model.Category)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&model.Category{}).Where("LOWER(name) = ?", strings.ToLower(input.Name)).Count(&count)
		if count > 0 {
			return utils.NewValidationError("Category name already exists", nil)
		}
		if err := copier.Copy(category, &input); err != nil {
			return utils.NewValidationError(constants.ERROR_INPUT, err)
		}
		category.Slug = helper.GenerateUniqueCategorySlug(tx, input.Name, 0)
		return tx.Create(category).Error
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("inputCategory").(model.CategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	var category model.Category
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError(constants.NOT_FOUND_RECORDS, err)
			}
			return err
		}
		if category.Name != input.Name {
			category.Slug = helper.GenerateUniqueCategorySlug(tx, input.Name, category.ID)
		}
		if err := copier.Copy(&category, &input); err != nil {
			return utils.NewValidationError(constants.ERROR_INPUT, err)
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategory refuses to remove categories that still hold products.
func DeleteCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB
	var count int64
	db.Model(&model.Product{}).Where("category_id IN ?", input.IDs).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_DELETE, errors.New("category still has products"))
	}
	res := db.Unscoped().Where("id IN ?", input.IDs).Delete(&model.Category{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, res.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": res.RowsAffected})
}

// Product

func GetProducts(c *fiber.Ctx) error {
	filterInput := new(model.FilterProduct)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	condition := database.DB.Model(&model.Product{})
	if filterInput.CategoryID != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryID)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR code = ?", key, filterInput.SearchKey)
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products []model.Product
	if err := condition.Preload("Category").Order("category_id ASC, code ASC, name ASC").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       products,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetProductById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	var product model.Product
	if err := database.DB.Preload("Category").First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func saveProduct(product *model.Product, input model.ProductInput) error {
	db := database.DB
	var category model.Category
	if err := db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewValidationError("categoryId does not exist", err)
		}
		return utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := copier.CopyWithOption(product, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.NewValidationError(constants.ERROR_INPUT, err)
	}
	product.Code = strings.TrimSpace(input.Code)
	product.Description = input.Description
	product.Price = input.Price
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.Category = nil

	if err := db.Save(product).Error; err != nil {
		return utils.NewDatabaseError(constants.ERROR_EDIT, err)
	}
	// zero values of columns with a default are skipped on insert
	if !product.Active {
		db.Model(product).Update("active", false)
	}
	product.Category = &category
	return nil
}

func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("inputProduct").(model.ProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	product := &model.Product{Active: true}
	if err := saveProduct(product, input); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("inputProduct").(model.ProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if err := saveProduct(&product, input); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB
	var products []model.Product
	db.Where("id IN ?", input.IDs).Find(&products)

	// order lines keep their own copy of name and price, so products can go
	res := db.Where("id IN ?", input.IDs).Delete(&model.Product{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, res.Error)
	}
	if cld, ok := c.Locals("cld").(*cloudinary.Cloudinary); ok {
		for _, p := range products {
			helper.DestroyImage(cld, helper.ProductImagePublicID(p))
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": res.RowsAffected})
}

func UploadProductImage(c *fiber.Ctx) error {
	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok || cld == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Image upload is not configured", errors.New("cloudinary not initialised"))
	}
	id := c.Locals("inputId").(int)
	file := c.Locals("inputImage").(*multipart.FileHeader)

	db := database.DB
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	defer f.Close()

	url, publicID, err := helper.UploadProductImage(c.Context(), cld, product.ID, f)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Image upload failed", err)
	}

	oldPublicID := helper.ProductImagePublicID(product)
	if err := db.Model(&product).Updates(map[string]interface{}{
		"image_url":       url,
		"image_public_id": publicID,
	}).Error; err != nil {
		helper.DestroyImage(cld, publicID)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	helper.DestroyImage(cld, oldPublicID)
	product.ImageUrl = &url
	product.ImagePublicId = &publicID
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// Extras

func GetMenuExtras(c *fiber.Ctx) error {
	condition := database.DB.Model(&model.MenuExtra{})
	if t := c.Query("type"); t != "" {
		condition = condition.Where("type = ?", t)
	}
	var extras []model.MenuExtra
	if err := condition.Order("type ASC, name ASC").Find(&extras).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, extras)
}

func CreateMenuExtra(c *fiber.Ctx) error {
	input, ok := c.Locals("inputMenuExtra").(model.MenuExtraInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	extra := &model.MenuExtra{Type: input.Type, Name: strings.TrimSpace(input.Name), Price: input.Price, Active: true}
	if input.Active != nil {
		extra.Active = *input.Active
	}
	if err := database.DB.Create(extra).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if !extra.Active {
		database.DB.Model(extra).Update("active", false)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, extra)
}

func EditMenuExtra(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("inputMenuExtra").(model.MenuExtraInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB
	var extra model.MenuExtra
	if err := db.First(&extra, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	extra.Type = input.Type
	extra.Name = strings.TrimSpace(input.Name)
	extra.Price = input.Price
	if input.Active != nil {
		extra.Active = *input.Active
	}
	if err := db.Save(&extra).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, extra)
}

func DeleteMenuExtra(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	res := database.DB.Where("id IN ?", input.IDs).Delete(&model.MenuExtra{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, res.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": res.RowsAffected})
}
