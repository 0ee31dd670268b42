package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List dishes
	// (GET /dishes)
	ListDishes(ctx echo.Context) error
	// Create a dish
	// (POST /dishes)
	CreateDish(ctx echo.Context) error
	// Read a dish
	// (GET /dishes/{dishId})
	GetDish(ctx echo.Context, dishId string) error
	// Update a dish
	// (PUT /dishes/{dishId})
	UpdateDish(ctx echo.Context, dishId string) error
	// List orders
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Create an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Read an order
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId string) error
	// Update an order
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId string) error
	// Delete a pending order
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId string) error
	// Liveness check
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDishes converts echo context to params.
func (w *ServerInterfaceWrapper) ListDishes(ctx echo.Context) error {
	return w.Handler.ListDishes(ctx)
}

// CreateDish converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	return w.Handler.CreateDish(ctx)
}

// GetDish converts echo context to params.
func (w *ServerInterfaceWrapper) GetDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.GetDish(ctx, dishId)
}

// UpdateDish converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDish(ctx, dishId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderId)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &value)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dishes", wrapper.ListDishes)
	router.POST(baseURL+"/dishes", wrapper.CreateDish)
	router.GET(baseURL+"/dishes/:dishId", wrapper.GetDish)
	router.PUT(baseURL+"/dishes/:dishId", wrapper.UpdateDish)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/health", wrapper.GetHealth)
}
