// Package docs holds the Swagger 2.0 description of the GrubDash API in the
// form swag generates, registered under the default instance name.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/dishes": {
            "get": {
                "summary": "List dishes",
                "operationId": "listDishes",
                "responses": {
                    "200": {"description": "All dishes", "schema": {"$ref": "#/definitions/DishList"}}
                }
            },
            "post": {
                "summary": "Create a dish",
                "operationId": "createDish",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/DishEnvelope"}}
                ],
                "responses": {
                    "201": {"description": "Created dish", "schema": {"$ref": "#/definitions/DishEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/dishes/{dishId}": {
            "get": {
                "summary": "Read a dish",
                "operationId": "getDish",
                "parameters": [
                    {"in": "path", "name": "dishId", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "The dish", "schema": {"$ref": "#/definitions/DishEnvelope"}},
                    "404": {"description": "Unknown dish", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "summary": "Update a dish",
                "operationId": "updateDish",
                "parameters": [
                    {"in": "path", "name": "dishId", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/DishEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "Updated dish", "schema": {"$ref": "#/definitions/DishEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown dish", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders": {
            "get": {
                "summary": "List orders",
                "operationId": "listOrders",
                "responses": {
                    "200": {"description": "All orders", "schema": {"$ref": "#/definitions/OrderList"}}
                }
            },
            "post": {
                "summary": "Create an order",
                "operationId": "createOrder",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/OrderEnvelope"}}
                ],
                "responses": {
                    "201": {"description": "Created order", "schema": {"$ref": "#/definitions/OrderEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "summary": "Read an order",
                "operationId": "getOrder",
                "parameters": [
                    {"in": "path", "name": "orderId", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "The order", "schema": {"$ref": "#/definitions/OrderEnvelope"}},
                    "404": {"description": "Unknown order", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "summary": "Update an order",
                "operationId": "updateOrder",
                "parameters": [
                    {"in": "path", "name": "orderId", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/OrderEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "Updated order", "schema": {"$ref": "#/definitions/OrderEnvelope"}},
                    "400": {"description": "Validation failure or delivered order", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown order", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "summary": "Delete a pending order",
                "operationId": "deleteOrder",
                "parameters": [
                    {"in": "path", "name": "orderId", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Removed"},
                    "400": {"description": "Order is not pending", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown order", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Liveness check",
                "operationId": "getHealth",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Healthy"}
                }
            }
        }
    },
    "definitions": {
        "Dish": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "integer", "minimum": 1},
                "image_url": {"type": "string"}
            }
        },
        "DishEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/Dish"}}
        },
        "DishList": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/Dish"}}}
        },
        "LineItem": {
            "type": "object",
            "additionalProperties": true,
            "properties": {
                "dishId": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "deliverTo": {"type": "string"},
                "mobileNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "preparing", "out-for-delivery", "delivered"]},
                "dishes": {"type": "array", "items": {"$ref": "#/definitions/LineItem"}}
            }
        },
        "OrderEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/Order"}}
        },
        "OrderList": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/Order"}}}
        },
        "Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GrubDash API",
	Description:      "Dish menu and order management for a food delivery kitchen.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
