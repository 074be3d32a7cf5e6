package helper

import (
	"fmt"

	"laundry_os/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueServiceSlug slugifies a price-list name, suffixing a counter
// until the slug is free.
func GenerateUniqueServiceSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.ServiceItem{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
