package database

import (
	"fmt"
	"pizzeria_kassa/config"
	"pizzeria_kassa/model"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens postgres by default. DB_DRIVER=sqlite runs a single till on
// a local file (DB_PATH, default kassa.db).
func ConnectDB() {
	var err error
	switch config.ConfigDefault("DB_DRIVER", "postgres") {
	case "sqlite":
		DB, err = gorm.Open(sqlite.Open(config.ConfigDefault("DB_PATH", "kassa.db")), &gorm.Config{})
		if err == nil {
			// sqlite allows a single writer
			if sqlDB, dbErr := DB.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	default:
		DB, err = gorm.Open(postgres.Open(postgresDSN()), &gorm.Config{})
	}

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic("failed to migrate database: " + err.Error())
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

func postgresDSN() string {
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.MenuExtra{},
		&model.Order{},
		&model.OrderLine{},
		&model.ReceiptCounter{},
	)
}
