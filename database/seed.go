package database

import (
	"log"
	"pizzeria_kassa/config"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	password := config.ConfigDefault("ADMIN_PASSWORD", "kassa1234")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "admin", Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Pizza klein", SortOrder: 10, Kind: constants.KIND_PIZZA},
		{Name: "Pizza medium", SortOrder: 11, Kind: constants.KIND_PIZZA},
		{Name: "Pizza groot", SortOrder: 12, Kind: constants.KIND_PIZZA},
		{Name: "Pizza family", SortOrder: 13, Kind: constants.KIND_PIZZA},
		{Name: "Turks brood", SortOrder: 20, Kind: constants.KIND_BROODJE},
		{Name: "Pita", SortOrder: 21, Kind: constants.KIND_BROODJE},
		{Name: "Durum", SortOrder: 22, Kind: constants.KIND_BROODJE},
		{Name: "Schotel", SortOrder: 30, Kind: constants.KIND_SCHOTEL},
		{Name: "Mix grill", SortOrder: 31, Kind: constants.KIND_SCHOTEL},
		{Name: "Kapsalon", SortOrder: 32, Kind: constants.KIND_SCHOTEL},
		{Name: "Dranken", SortOrder: 90, Kind: constants.KIND_OTHER},
	}
	for _, c := range categories {
		c.Slug = slug.Make(c.Name)
		if err := db.Where(model.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			log.Println("failed to seed category:", c.Name, "error:", err)
		}
	}

	extras := []model.MenuExtra{
		{Type: constants.EXTRA_VLEES, Name: "Kip", Active: true},
		{Type: constants.EXTRA_VLEES, Name: "Kebab", Active: true},
		{Type: constants.EXTRA_VLEES, Name: "Mix", Active: true},
		{Type: constants.EXTRA_BIJGERECHT, Name: "Frietjes", Active: true},
		{Type: constants.EXTRA_BIJGERECHT, Name: "Rijst", Active: true},
		{Type: constants.EXTRA_SAUS, Name: "Looksaus", Price: 0.5, Active: true},
		{Type: constants.EXTRA_SAUS, Name: "Samurai", Price: 0.5, Active: true},
		{Type: constants.EXTRA_SAUS, Name: "Cocktail", Price: 0.5, Active: true},
		{Type: constants.EXTRA_GARNERING, Name: "Sla", Active: true},
		{Type: constants.EXTRA_GARNERING, Name: "Ui", Active: true},
	}
	for _, e := range extras {
		if err := db.Where(model.MenuExtra{Type: e.Type, Name: e.Name}).FirstOrCreate(&e).Error; err != nil {
			log.Println("failed to seed extra:", e.Name, "error:", err)
		}
	}
	log.Println("Seed data checked")
}
