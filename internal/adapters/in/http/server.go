package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Failures
// are returned to echo and rendered by ErrorHandler.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler
	ListDishes  queries.ListDishesQueryHandler
	GetDish     queries.GetDishQueryHandler
	ListOrders  queries.ListOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}

	response := make([]Dish, len(dishes))
	for i, d := range dishes {
		response[i] = dishFromDomain(d)
	}

	return ctx.JSON(http.StatusOK, Envelope[[]Dish]{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	body, err := decodeData[DishRequest](ctx)
	if err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), commands.NewCreateDishCommand(body.payload()))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Envelope[Dish]{Data: dishFromDomain(created)})
}

// GetDish handles GET /dishes/:dishId.
func (s *Server) GetDish(ctx echo.Context, dishId string) error {
	query, err := queries.NewGetDishQuery(dishId)
	if err != nil {
		return err
	}

	found, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Envelope[Dish]{Data: dishFromDomain(found)})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(ctx echo.Context, dishId string) error {
	body, err := decodeData[DishRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(dishId, body.payload())
	if err != nil {
		return err
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Envelope[Dish]{Data: dishFromDomain(updated)})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromDomain(o)
	}

	return ctx.JSON(http.StatusOK, Envelope[[]Order]{Data: response})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	body, err := decodeData[OrderRequest](ctx)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), commands.NewCreateOrderCommand(body.payload()))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Envelope[Order]{Data: orderFromDomain(created)})
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Envelope[Order]{Data: orderFromDomain(found)})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context, orderId string) error {
	body, err := decodeData[OrderRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderId, body.payload())
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Envelope[Order]{Data: orderFromDomain(updated)})
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context, orderId string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderId)
	if err != nil {
		return err
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
