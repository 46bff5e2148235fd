package helper

import (
	"errors"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"

	"gorm.io/gorm"
)

func GetCustomerByPhone(db *gorm.DB, phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := db.Where(&model.Customer{Phone: utils.NormalizePhone(phone)}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func CheckByPhoneNumberCustomer(db *gorm.DB, phoneNumber string, id *uint) (bool, error) {
	var count int64
	query := db.Model(&model.Customer{}).Where("phone = ?", utils.NormalizePhone(phoneNumber))
	if id != nil {
		query = query.Where("id <> ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CheckByEmailCustomer(db *gorm.DB, email string, id *uint) (bool, error) {
	var count int64
	query := db.Model(&model.Customer{}).Where("email = ?", email)
	if id != nil {
		query = query.Where("id <> ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
