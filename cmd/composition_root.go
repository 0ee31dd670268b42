package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	gormDB    *gorm.DB
	dishRepo  ports.DishRepository
	orderRepo ports.OrderRepository
}

// NewCompositionRoot opens the configured Resource Store. The postgres store
// is migrated before use.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{config: config, logger: logger}

	switch config.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(ctx, config.DSN())
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			_ = postgres.Close(db)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		c.gormDB = db
		c.dishRepo = dishrepo.NewGormDishRepository(db, kernel.NewID)
		c.orderRepo = orderrepo.NewGormOrderRepository(db, kernel.NewID)
	default:
		c.dishRepo = memory.NewDishRepository(kernel.NewID)
		c.orderRepo = memory.NewOrderRepository(kernel.NewID)
	}

	logger.InfoContext(ctx, "Resource store ready", "driver", config.StorageDriver)
	return c, nil
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishRepo)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.orderRepo)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.config.OrderBacklogSchedule, c.logger)
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Close(c.gormDB)
}
