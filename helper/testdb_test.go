package helper

import (
	"pizzeria_kassa/database"
	"pizzeria_kassa/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, kind string, sortOrder int) model.Category {
	t.Helper()
	c := model.Category{Name: name, Slug: GenerateUniqueCategorySlug(db, name, 0), Kind: kind, SortOrder: sortOrder}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, code, name string, price float64) model.Product {
	t.Helper()
	p := model.Product{CategoryID: categoryID, Code: code, Name: name, Price: price, Active: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}
