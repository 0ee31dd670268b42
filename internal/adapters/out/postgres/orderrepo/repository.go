package orderrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	nextID kernel.IDGenerator
}

// NewGormOrderRepository creates a repository that draws ids from nextID, or
// from kernel.NewID when nextID is nil.
func NewGormOrderRepository(db *gorm.DB, nextID kernel.IDGenerator) *GormOrderRepository {
	if nextID == nil {
		nextID = kernel.NewID
	}
	return &GormOrderRepository{db: db, nextID: nextID}
}

// List returns every order in insertion order.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// FindByID retrieves an order by id.
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	return r.findByID(r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) findByID(tx *gorm.DB, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := tx.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Insert stores a new order under a freshly generated id.
func (r *GormOrderRepository) Insert(ctx context.Context, aggregate *order.Order) error {
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

// Update writes deliverTo, mobileNumber, status and dishes of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("deliver_to", "mobile_number", "status", "dishes").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// RemoveByID deletes the order if precondition accepts it. The row is locked
// for the duration of the check so a concurrent update cannot slip between the
// guard and the delete.
func (r *GormOrderRepository) RemoveByID(ctx context.Context, id string, precondition ports.RemovePrecondition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := r.findByID(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}

		if precondition != nil {
			if err := precondition(found); err != nil {
				return err
			}
		}

		return tx.Delete(&OrderDTO{}, "id = ?", id).Error
	})
}
