package helper

import (
	"fmt"
	"pizzeria_kassa/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueCategorySlug slugs name and appends -1, -2, ... until no
// other category uses it. excludeID skips the category being edited.
func GenerateUniqueCategorySlug(tx *gorm.DB, name string, excludeID uint) string {
	base := slug.Make(name)
	if base == "" {
		base = "categorie"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(&model.Category{}).Unscoped().Where("slug = ?", result)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		q.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
