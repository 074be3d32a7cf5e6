package helper

import (
	"errors"

	"laundry_os/database"
	"laundry_os/model"

	"gorm.io/gorm"
)

func GetCustomerById(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func CheckByPhoneNumberCustomer(phone string, excludeId *uint) (bool, error) {
	query := database.DB.Model(&model.Customer{}).Where("phone = ?", phone)
	if excludeId != nil {
		query = query.Where("id <> ?", *excludeId)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CheckByEmailCustomer(email string, excludeId *uint) (bool, error) {
	query := database.DB.Model(&model.Customer{}).Where("email = ?", email)
	if excludeId != nil {
		query = query.Where("id <> ?", *excludeId)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
