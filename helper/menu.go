package helper

import (
	"pizzeria_kassa/model"

	"gorm.io/gorm"
)

type MenuSection struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Kind     string          `json:"kind"`
	Products []model.Product `json:"products"`
}

type Menu struct {
	Sections []MenuSection                  `json:"sections"`
	Extras   map[string][]model.MenuExtra `json:"extras"`
}

// GetMenu returns active products grouped by category in sort order, plus the
// active extras grouped by type. Empty categories are left out.
func GetMenu(db *gorm.DB) (*Menu, error) {
	var categories []model.Category
	if err := db.Preload("Products", func(q *gorm.DB) *gorm.DB {
		return q.Where("active = ?", true).Order("code ASC, name ASC")
	}).Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	menu := &Menu{Sections: []MenuSection{}, Extras: map[string][]model.MenuExtra{}}
	for _, c := range categories {
		if len(c.Products) == 0 {
			continue
		}
		menu.Sections = append(menu.Sections, MenuSection{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			Kind:     c.Kind,
			Products: c.Products,
		})
	}

	var extras []model.MenuExtra
	if err := db.Where("active = ?", true).Order("type ASC, name ASC").Find(&extras).Error; err != nil {
		return nil, err
	}
	for _, e := range extras {
		menu.Extras[e.Type] = append(menu.Extras[e.Type], e)
	}
	return menu, nil
}

func GetMenuSection(db *gorm.DB, slug string) (*MenuSection, error) {
	var c model.Category
	if err := db.Where("slug = ?", slug).Preload("Products", func(q *gorm.DB) *gorm.DB {
		return q.Where("active = ?", true).Order("code ASC, name ASC")
	}).First(&c).Error; err != nil {
		return nil, err
	}
	products := c.Products
	if products == nil {
		products = []model.Product{}
	}
	return &MenuSection{ID: c.ID, Name: c.Name, Slug: c.Slug, Kind: c.Kind, Products: products}, nil
}
