package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"grubdash/internal/adapters/in/http/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// OpenAPI converts the registered Swagger 2.0 document to OpenAPI 3 and
// validates the result.
func OpenAPI(ctx context.Context) (*openapi3.T, error) {
	var v2 openapi2.T
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &v2); err != nil {
		return nil, fmt.Errorf("parse swagger document: %w", err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger document: %w", err)
	}

	if err := v3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return v3, nil
}

func openAPIHandler(doc *openapi3.T) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	}
}
