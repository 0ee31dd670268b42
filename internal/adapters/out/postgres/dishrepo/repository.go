package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db     *gorm.DB
	nextID kernel.IDGenerator
}

// NewGormDishRepository creates a repository that draws ids from nextID, or
// from kernel.NewID when nextID is nil.
func NewGormDishRepository(db *gorm.DB, nextID kernel.IDGenerator) *GormDishRepository {
	if nextID == nil {
		nextID = kernel.NewID
	}
	return &GormDishRepository{db: db, nextID: nextID}
}

// List returns every dish in insertion order.
func (r *GormDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	return dishes, nil
}

// FindByID retrieves a dish by id.
func (r *GormDishRepository) FindByID(ctx context.Context, id string) (*dish.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Insert stores a new dish under a freshly generated id. The id is assigned
// to the aggregate only after the row is written.
func (r *GormDishRepository) Insert(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id, err := r.nextID()
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = id
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(id)
}

// Update writes every mutable column of an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "image_url").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", dto.ID)
	}

	return nil
}
