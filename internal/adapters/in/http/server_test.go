package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Status int
	Body   map[string]any
	Raw    string
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	dishes := memory.NewDishRepository(kernel.NewID)
	orders := memory.NewOrderRepository(kernel.NewID)

	server := api.NewServer(api.Handlers{
		CreateDish:  commands.NewCreateDishCommandHandler(dishes),
		UpdateDish:  commands.NewUpdateDishCommandHandler(dishes),
		CreateOrder: commands.NewCreateOrderCommandHandler(orders),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(orders),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(orders),
		ListDishes:  queries.NewListDishesQueryHandler(dishes),
		GetDish:     queries.NewGetDishQueryHandler(dishes),
		ListOrders:  queries.NewListOrdersQueryHandler(orders),
		GetOrder:    queries.NewGetOrderQueryHandler(orders),
	})

	e, err := api.NewRouter(t.Context(), server, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	res := response{Status: rec.Code, Raw: rec.Body.String()}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res.Body))
	}
	return res
}

func data(t *testing.T, res response) map[string]any {
	t.Helper()
	d, ok := res.Body["data"].(map[string]any)
	require.True(t, ok, "expected a data object, got %s", res.Raw)
	return d
}

const tacoBody = `{"data":{"name":"Taco","description":"Corn tortilla","price":5,"image_url":"https://example.com/taco.png"}}`

func createTaco(t *testing.T, e *echo.Echo) string {
	t.Helper()
	res := do(t, e, http.MethodPost, "/dishes", tacoBody)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	return data(t, res)["id"].(string)
}

func createOrder(t *testing.T, e *echo.Echo, dishID string) string {
	t.Helper()
	res := do(t, e, http.MethodPost, "/orders",
		`{"data":{"deliverTo":"123 Main","mobileNumber":"555-1212","dishes":[{"dishId":"`+dishID+`","quantity":2}]}}`)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	return data(t, res)["id"].(string)
}

func TestTacoLifecycle(t *testing.T) {
	e := newTestRouter(t)

	res := do(t, e, http.MethodGet, "/dishes", "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, []any{}, res.Body["data"])

	dishID := createTaco(t, e)
	assert.NotEmpty(t, dishID)

	res = do(t, e, http.MethodGet, "/dishes/"+dishID, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, map[string]any{
		"id":          dishID,
		"name":        "Taco",
		"description": "Corn tortilla",
		"price":       float64(5),
		"image_url":   "https://example.com/taco.png",
	}, data(t, res))

	orderID := createOrder(t, e, dishID)
	res = do(t, e, http.MethodGet, "/orders/"+orderID, "")
	require.Equal(t, http.StatusOK, res.Status)
	order := data(t, res)
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, []any{map[string]any{"dishId": dishID, "quantity": float64(2)}}, order["dishes"])

	res = do(t, e, http.MethodPut, "/orders/"+orderID,
		`{"data":{"deliverTo":"123 Main","mobileNumber":"555-1212","status":"delivered","dishes":[{"dishId":"`+dishID+`","quantity":2}]}}`)
	require.Equal(t, http.StatusOK, res.Status, res.Raw)
	assert.Equal(t, "delivered", data(t, res)["status"])

	res = do(t, e, http.MethodPut, "/orders/"+orderID,
		`{"data":{"deliverTo":"Elsewhere","mobileNumber":"555-1212","status":"pending","dishes":[{"quantity":1}]}}`)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "A delivered order cannot be changed", res.Body["error"])

	res = do(t, e, http.MethodDelete, "/orders/"+orderID, "")
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "An order cannot be deleted unless it is pending", res.Body["error"])

	res = do(t, e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["data"], 1)
}

func TestCreateDish_Validation(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"data":{"description":"d","price":1,"image_url":"u"}}`, "Dish must include a name"},
		{"blank name", `{"data":{"name":"","description":"d","price":1,"image_url":"u"}}`, "Dish must include a name"},
		{"missing description", `{"data":{"name":"n","price":1,"image_url":"u"}}`, "Dish must include a description"},
		{"missing price", `{"data":{"name":"n","description":"d","image_url":"u"}}`, "Dish must have a price that is an integer greater than 0"},
		{"zero price", `{"data":{"name":"n","description":"d","price":0,"image_url":"u"}}`, "Dish must have a price that is an integer greater than 0"},
		{"fractional price", `{"data":{"name":"n","description":"d","price":3.5,"image_url":"u"}}`, "Dish must have a price that is an integer greater than 0"},
		{"string price", `{"data":{"name":"n","description":"d","price":"5","image_url":"u"}}`, "Dish must have a price that is an integer greater than 0"},
		{"missing image", `{"data":{"name":"n","description":"d","price":1}}`, "Dish must include an image_url"},
		{"first failure wins", `{"data":{"price":-1}}`, "Dish must include a name"},
		{"missing data", `{}`, "Dish must include a name"},
		{"empty body", ``, "Dish must include a name"},
		{"malformed json", `{"data":`, "Request body must be valid JSON with a data object"},
		{"data not an object", `{"data":5}`, "Request body must be valid JSON with a data object"},
		{"false name", `{"data":{"name":false,"description":"d","price":1,"image_url":"u"}}`, "Dish must include a name"},
		{"null description", `{"data":{"name":"n","description":null,"price":1,"image_url":"u"}}`, "Dish must include a description"},
	}

	for _, tc := range cases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			res := do(t, e, http.MethodPost, "/dishes", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.Status)
			assert.Equal(t, tc.want, res.Body["error"])
		})
	}

	res := do(t, e, http.MethodGet, "/dishes", "")
	assert.Equal(t, []any{}, res.Body["data"])
}

func TestCreateDish_IgnoresClientID(t *testing.T) {
	e := newTestRouter(t)

	res := do(t, e, http.MethodPost, "/dishes",
		`{"data":{"id":"mine","name":"n","description":"d","price":2,"image_url":"u"}}`)

	require.Equal(t, http.StatusCreated, res.Status)
	assert.NotEqual(t, "mine", data(t, res)["id"])
}

func TestCreateDish_AcceptsNonStringName(t *testing.T) {
	e := newTestRouter(t)

	res := do(t, e, http.MethodPost, "/dishes",
		`{"data":{"name":7,"description":"d","price":2,"image_url":"u"}}`)

	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	assert.Equal(t, "7", data(t, res)["name"])
}

func TestUpdateDish(t *testing.T) {
	e := newTestRouter(t)
	dishID := createTaco(t, e)

	t.Run("should overwrite fields and keep the id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/"+dishID,
			`{"data":{"name":"Burrito","description":"Flour","price":7,"image_url":"b.png"}}`)
		require.Equal(t, http.StatusOK, res.Status, res.Raw)
		assert.Equal(t, dishID, data(t, res)["id"])
		assert.Equal(t, "Burrito", data(t, res)["name"])

		res = do(t, e, http.MethodGet, "/dishes/"+dishID, "")
		assert.Equal(t, "Burrito", data(t, res)["name"])
	})

	t.Run("should accept a matching body id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/"+dishID,
			`{"data":{"id":"`+dishID+`","name":"Taco","description":"d","price":5,"image_url":"u"}}`)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("should reject a mismatched body id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/"+dishID,
			`{"data":{"id":"other","name":"Taco","description":"d","price":5,"image_url":"u"}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Dish id does not match route id. Dish: other, Route: "+dishID, res.Body["error"])
	})

	t.Run("should reject a numeric body id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/"+dishID,
			`{"data":{"id":5,"name":"Taco","description":"d","price":5,"image_url":"u"}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Dish id does not match route id. Dish: 5, Route: "+dishID, res.Body["error"])
	})

	t.Run("should validate before comparing ids", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/"+dishID, `{"data":{"id":"other","price":5}}`)
		assert.Equal(t, "Dish must include a name", res.Body["error"])
	})

	t.Run("should report an unknown dish before validating", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/dishes/nope", `{"data":{}}`)
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Dish id not found: nope", res.Body["error"])
	})
}

func TestDishes_CannotBeDeleted(t *testing.T) {
	e := newTestRouter(t)
	dishID := createTaco(t, e)

	res := do(t, e, http.MethodDelete, "/dishes/"+dishID, "")

	assert.Equal(t, http.StatusMethodNotAllowed, res.Status)
	assert.Equal(t, "DELETE not allowed for /dishes/"+dishID, res.Body["error"])
}

func TestCreateOrder_Validation(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing deliverTo", `{"data":{"mobileNumber":"m","dishes":[{"quantity":1}]}}`, "Order must include a deliverTo"},
		{"missing mobileNumber", `{"data":{"deliverTo":"a","dishes":[{"quantity":1}]}}`, "Order must include a mobileNumber"},
		{"missing dishes", `{"data":{"deliverTo":"a","mobileNumber":"m"}}`, "Order must include at least one dish"},
		{"empty dishes", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[]}}`, "Order must include at least one dish"},
		{"dishes as a string", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":"taco"}}`, "Order must include at least one dish"},
		{"dishes as an object", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":{}}}`, "Order must include at least one dish"},
		{"dishes as a number", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":5}}`, "Order must include at least one dish"},
		{"deliverTo before dishes shape", `{"data":{"mobileNumber":"m","dishes":"taco"}}`, "Order must include a deliverTo"},
		{"mobileNumber before dishes shape", `{"data":{"deliverTo":"a","dishes":"taco"}}`, "Order must include a mobileNumber"},
		{"line item not an object", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[5]}}`, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"missing quantity", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[{"quantity":1},{"dishId":"x"}]}}`, "Dish 1 must have a quantity that is an integer greater than 0"},
		{"zero quantity", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[{"quantity":0}]}}`, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"string quantity", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[{"quantity":"2"}]}}`, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"lowest failing index", `{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[{"quantity":1},{"quantity":1.5},{"quantity":-1}]}}`, "Dish 1 must have a quantity that is an integer greater than 0"},
		{"unknown status", `{"data":{"deliverTo":"a","mobileNumber":"m","status":"lost","dishes":[{"quantity":1}]}}`, "Order must have a status of pending, preparing, out-for-delivery, delivered"},
		{"numeric status", `{"data":{"deliverTo":"a","mobileNumber":"m","status":5,"dishes":[{"quantity":1}]}}`, "Order must have a status of pending, preparing, out-for-delivery, delivered"},
	}

	for _, tc := range cases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			res := do(t, e, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.Status)
			assert.Equal(t, tc.want, res.Body["error"])
		})
	}
}

func TestCreateOrder_EchoesLineItems(t *testing.T) {
	e := newTestRouter(t)
	want := []any{
		map[string]any{"id": "d1", "name": "Taco", "price": float64(5), "quantity": float64(2)},
		map[string]any{"dishId": "d2", "quantity": float64(1), "note": "extra salsa", "tags": []any{"hot"}},
	}

	res := do(t, e, http.MethodPost, "/orders",
		`{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[`+
			`{"id":"d1","name":"Taco","price":5,"quantity":2},`+
			`{"dishId":"d2","quantity":1,"note":"extra salsa","tags":["hot"]}]}}`)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	assert.Equal(t, want, data(t, res)["dishes"])

	res = do(t, e, http.MethodGet, "/orders/"+data(t, res)["id"].(string), "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, want, data(t, res)["dishes"])
}

func TestCreateOrder_KeepsSuppliedStatus(t *testing.T) {
	e := newTestRouter(t)

	res := do(t, e, http.MethodPost, "/orders",
		`{"data":{"deliverTo":"a","mobileNumber":"m","status":"preparing","dishes":[{"quantity":1}]}}`)

	require.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "preparing", data(t, res)["status"])
}

func TestUpdateOrder(t *testing.T) {
	e := newTestRouter(t)
	orderID := createOrder(t, e, "d1")
	valid := func(id, status string) string {
		return `{"data":{"id":"` + id + `","deliverTo":"456 Elm","mobileNumber":"555","status":"` + status + `","dishes":[{"dishId":"d2","quantity":3}]}}`
	}

	t.Run("should require a status", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID,
			`{"data":{"deliverTo":"a","mobileNumber":"m","dishes":[{"quantity":1}]}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Order must have a status of pending, preparing, out-for-delivery, delivered", res.Body["error"])
	})

	t.Run("should check the status before the id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID, valid("other", "lost"))
		assert.Equal(t, "Order must have a status of pending, preparing, out-for-delivery, delivered", res.Body["error"])
	})

	t.Run("should reject a numeric status", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID,
			`{"data":{"deliverTo":"a","mobileNumber":"m","status":5,"dishes":[{"quantity":1}]}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Order must have a status of pending, preparing, out-for-delivery, delivered", res.Body["error"])
	})

	t.Run("should treat non-array dishes as none", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID,
			`{"data":{"deliverTo":"a","mobileNumber":"m","status":"pending","dishes":"taco"}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Order must include at least one dish", res.Body["error"])
	})

	t.Run("should reject a numeric id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID,
			`{"data":{"id":5,"deliverTo":"a","mobileNumber":"m","status":"pending","dishes":[{"quantity":1}]}}`)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Order id does not match route id. Order: 5, Route: "+orderID, res.Body["error"])
	})

	t.Run("should reject a mismatched id", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID, valid("other", "preparing"))
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Order id does not match route id. Order: other, Route: "+orderID, res.Body["error"])
	})

	t.Run("should overwrite fields", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID, valid("", "out-for-delivery"))
		require.Equal(t, http.StatusOK, res.Status, res.Raw)
		order := data(t, res)
		assert.Equal(t, orderID, order["id"])
		assert.Equal(t, "456 Elm", order["deliverTo"])
		assert.Equal(t, "out-for-delivery", order["status"])
		assert.Equal(t, []any{map[string]any{"dishId": "d2", "quantity": float64(3)}}, order["dishes"])
	})

	t.Run("should allow going back to pending", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/"+orderID, valid(orderID, "pending"))
		require.Equal(t, http.StatusOK, res.Status, res.Raw)
		assert.Equal(t, "pending", data(t, res)["status"])
	})

	t.Run("should report an unknown order", func(t *testing.T) {
		res := do(t, e, http.MethodPut, "/orders/nope", valid("", "pending"))
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Order id not found: nope", res.Body["error"])
	})
}

func TestDeleteOrder(t *testing.T) {
	e := newTestRouter(t)

	t.Run("should remove a pending order", func(t *testing.T) {
		orderID := createOrder(t, e, "d1")

		res := do(t, e, http.MethodDelete, "/orders/"+orderID, "")
		assert.Equal(t, http.StatusNoContent, res.Status)
		assert.Empty(t, res.Raw)

		res = do(t, e, http.MethodGet, "/orders/"+orderID, "")
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Order id not found: "+orderID, res.Body["error"])
	})

	t.Run("should refuse orders past pending", func(t *testing.T) {
		orderID := createOrder(t, e, "d1")
		res := do(t, e, http.MethodPut, "/orders/"+orderID,
			`{"data":{"deliverTo":"a","mobileNumber":"m","status":"preparing","dishes":[{"quantity":1}]}}`)
		require.Equal(t, http.StatusOK, res.Status)

		res = do(t, e, http.MethodDelete, "/orders/"+orderID, "")
		assert.Equal(t, http.StatusBadRequest, res.Status)

		res = do(t, e, http.MethodGet, "/orders/"+orderID, "")
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("should report an unknown order", func(t *testing.T) {
		res := do(t, e, http.MethodDelete, "/orders/nope", "")
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Order id not found: nope", res.Body["error"])
	})
}

func TestRouting(t *testing.T) {
	e := newTestRouter(t)

	t.Run("should report unknown paths", func(t *testing.T) {
		res := do(t, e, http.MethodGet, "/menu?x=1", "")
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Path not found: /menu?x=1", res.Body["error"])
	})

	t.Run("should report unsupported methods", func(t *testing.T) {
		res := do(t, e, http.MethodPatch, "/orders", "")
		assert.Equal(t, http.StatusMethodNotAllowed, res.Status)
		assert.Equal(t, "PATCH not allowed for /orders", res.Body["error"])
	})

	t.Run("should answer health checks", func(t *testing.T) {
		res := do(t, e, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "Healthy", res.Raw)
	})

	t.Run("should serve the openapi document", func(t *testing.T) {
		res := do(t, e, http.MethodGet, "/openapi.json", "")
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "GrubDash API", res.Body["info"].(map[string]any)["title"])
		paths := res.Body["paths"].(map[string]any)
		assert.Contains(t, paths, "/dishes/{dishId}")
		assert.Contains(t, paths, "/orders/{orderId}")
	})

	t.Run("should tag responses with a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dishes", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := echo.New()
	e.HTTPErrorHandler = api.ErrorHandler(logger)
	e.Use(api.RequestLogger(logger))
	e.GET("/boom", func(echo.Context) error { return io.ErrUnexpectedEOF })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), `"msg":"Request handled"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"component":"http"`)
}
