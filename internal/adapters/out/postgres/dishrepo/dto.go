// Package dishrepo persists the dish collection through GORM.
package dishrepo

import (
	"grubdash/internal/core/domain/model/dish"
)

// DishDTO is the dishes table row. Seq keeps insertion order since ids are
// random strings.
type DishDTO struct {
	ID          string `gorm:"primaryKey"`
	Seq         int64  `gorm:"autoIncrement;index"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null"`
	ImageURL    string `gorm:"column:image_url;not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	return dish.RestoreDish(dto.ID, dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
