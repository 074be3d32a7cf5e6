package database

import (
	"log"

	"laundry_os/constants"
	"laundry_os/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the bootstrap rows an empty store needs: the admin login,
// the order-number counter, and a default price list.
func SeedData(db *gorm.DB) {
	seedAccounts(db)
	seedCounter(db)
	seedServices(db)
}

func seedAccounts(db *gorm.DB) {
	var count int64
	db.Model(&model.Account{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Printf("seed: could not hash admin password: %v", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Password: string(hash), FullName: "Store Admin", Role: constants.ROLE_ADMIN, Active: true},
		{Username: "cashier", Password: string(hash), FullName: "Front Counter", Role: constants.ROLE_CASHIER, Active: true},
	}
	if err := db.Create(&accounts).Error; err != nil {
		log.Printf("seed: accounts failed: %v", err)
		return
	}
	log.Println("seed: created default admin and cashier accounts")
}

func seedCounter(db *gorm.DB) {
	counter := model.Counter{Key: model.OrderNumberCounter}
	if err := db.FirstOrCreate(&counter, model.Counter{Key: model.OrderNumberCounter}).Error; err != nil {
		log.Printf("seed: order number counter failed: %v", err)
	}
}

func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&model.ServiceItem{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []struct {
		Name  string
		Price float64
	}{
		{"Wash & Fold (per kg)", 45.00},
		{"Wash, Dry & Iron (per kg)", 65.00},
		{"Dry Cleaning - Shirt", 55.00},
		{"Dry Cleaning - Suit (2 piece)", 180.00},
		{"Dry Cleaning - Dress", 120.00},
		{"Duvet - Single", 110.00},
		{"Duvet - Double/Queen", 150.00},
		{"Ironing Only (per item)", 15.00},
	}

	services := make([]model.ServiceItem, 0, len(defaults))
	for _, d := range defaults {
		services = append(services, model.ServiceItem{
			Name:              d.Name,
			Slug:              slug.Make(d.Name),
			UnitPrice:         d.Price,
			ExpressMultiplier: 1.5,
			Active:            true,
		})
	}
	if err := db.Create(&services).Error; err != nil {
		log.Printf("seed: services failed: %v", err)
		return
	}
	log.Printf("seed: created %d price-list services", len(services))
}
