package docs

import "github.com/swaggo/swag"

// @title QuickBite Food Delivery API
// @version 1.0
// @description Backend for the QuickBite food-delivery platform
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "account details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current profile",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/state-machine": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Order lifecycle state machine",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Register as customer",
                "parameters": [
                    {"description": "account details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Customer login",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Browse restaurants",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/restaurants/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Search restaurants",
                "parameters": [
                    {"type": "string", "description": "menu item name fragment", "name": "item", "in": "query"},
                    {"type": "string", "description": "cuisine fragment", "name": "cuisine", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/addresses": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "List own delivery addresses",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Add a delivery address",
                "parameters": [
                    {"description": "address", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddressRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/addresses/{addressId}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Update a delivery address",
                "parameters": [
                    {"type": "integer", "name": "addressId", "in": "path", "required": true},
                    {"description": "changed fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddressUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "delete": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Delete a delivery address",
                "parameters": [
                    {"type": "integer", "name": "addressId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/orders": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Order history",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "order", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PlaceOrderRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/orders/{orderId}/track": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Track an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/customer/orders/{orderId}/cancel": {
            "post": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Cancel an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Register a restaurant with a new account",
                "parameters": [
                    {"description": "account + restaurant", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RestaurantRegisterRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/register/{userId}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Register a restaurant for an existing user",
                "parameters": [
                    {"type": "integer", "name": "userId", "in": "path", "required": true},
                    {"description": "restaurant", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateRestaurantRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Restaurant login",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/profile/{restaurantId}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Restaurant profile",
                "parameters": [
                    {"type": "integer", "name": "restaurantId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Update restaurant profile",
                "parameters": [
                    {"type": "integer", "name": "restaurantId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/menu/{restaurantId}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Restaurant menu",
                "parameters": [
                    {"type": "integer", "name": "restaurantId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Add menu item",
                "parameters": [
                    {"type": "integer", "name": "restaurantId", "in": "path", "required": true},
                    {"description": "item", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateMenuItemRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/item/{itemId}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Update menu item",
                "parameters": [
                    {"type": "integer", "name": "itemId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "delete": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Delete menu item",
                "parameters": [
                    {"type": "integer", "name": "itemId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/orders/{restaurantId}/{status}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Restaurant orders by status",
                "parameters": [
                    {"type": "integer", "name": "restaurantId", "in": "path", "required": true},
                    {"type": "string", "description": "order status or all", "name": "status", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/restaurant/order/{orderId}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant"],
                "summary": "Update order status",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true},
                    {"description": "target status", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateOrderStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Register as delivery personnel",
                "parameters": [
                    {"description": "account details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Delivery login",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/orders": {
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Place an order as delivery personnel",
                "parameters": [
                    {"description": "order", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PlaceOrderRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/orders/available": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Available orders",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/orders/{orderId}/accept": {
            "post": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Accept an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/orders/{orderId}/status": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Update delivery status",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true},
                    {"description": "target status", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateOrderStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/availability": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "Toggle own availability",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/delivery/personnel": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["delivery"],
                "summary": "List delivery personnel",
                "parameters": [
                    {"type": "boolean", "description": "only available personnel", "name": "available", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/register/users": {
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Register a user with any role",
                "parameters": [
                    {"description": "account details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/users/{userId}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/users/{userId}/deactivate": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Deactivate a user",
                "parameters": [
                    {"type": "integer", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/users/{userId}/delivery-addresses": {
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create address for a user",
                "parameters": [
                    {"type": "integer", "name": "userId", "in": "path", "required": true},
                    {"description": "address", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddressRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/users/{userId}/delivery-addresses/{addressId}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update address for a user",
                "parameters": [
                    {"type": "integer", "name": "userId", "in": "path", "required": true},
                    {"type": "integer", "name": "addressId", "in": "path", "required": true},
                    {"description": "changed fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddressUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all orders",
                "parameters": [
                    {"type": "string", "description": "order status", "name": "status", "in": "query"},
                    {"type": "string", "description": "created from (2006-01-02)", "name": "from", "in": "query"},
                    {"type": "string", "description": "created to (2006-01-02)", "name": "to", "in": "query"},
                    {"type": "integer", "description": "page (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/orders/{orderId}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Fetch an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/orders/{orderId}/cancel": {
            "post": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Cancel an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/orders/{orderId}/reschedule": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reschedule an order",
                "parameters": [
                    {"type": "integer", "name": "orderId", "in": "path", "required": true},
                    {"description": "new date", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RescheduleRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/reports/popular-restaurants": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Most popular restaurants",
                "parameters": [
                    {"type": "integer", "description": "max rows (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/reports/average-delivery-time": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Average delivery time",
                "parameters": [
                    {"type": "string", "description": "created from (2006-01-02)", "name": "from", "in": "query"},
                    {"type": "string", "description": "created to (2006-01-02)", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/reports/order-trends": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Order volume trend",
                "parameters": [
                    {"type": "string", "description": "day (default) or month", "name": "interval", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/monitor/active-users": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["monitor"],
                "summary": "Active users",
                "parameters": [
                    {"type": "integer", "description": "window in minutes (default 15)", "name": "minutes", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/monitor/delivery-activity": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["monitor"],
                "summary": "Delivery activity",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/admin/monitor/order-statuses": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["monitor"],
                "summary": "Order status breakdown",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "first_name", "password", "role"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "gender": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.AddressRequest": {
            "type": "object",
            "required": ["city", "country", "first_name", "last_name", "line1", "postal_code", "state"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "line1": {"type": "string"},
                "line2": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"},
                "postal_code": {"type": "string"},
                "is_default": {"type": "boolean"}
            }
        },
        "handlers.AddressUpdateRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "line1": {"type": "string"},
                "line2": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"},
                "postal_code": {"type": "string"},
                "is_default": {"type": "boolean"}
            }
        },
        "handlers.PlaceOrderRequest": {
            "type": "object",
            "required": ["delivery_address_id", "items", "restaurant_id"],
            "properties": {
                "restaurant_id": {"type": "integer"},
                "delivery_address_id": {"type": "integer"},
                "items": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["menu_item_id", "quantity"],
                        "properties": {
                            "menu_item_id": {"type": "integer"},
                            "quantity": {"type": "integer", "minimum": 1}
                        }
                    }
                }
            }
        },
        "handlers.RestaurantRegisterRequest": {
            "type": "object",
            "required": ["address", "email", "first_name", "password", "restaurant_name", "role"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "gender": {"type": "string"},
                "phone": {"type": "string"},
                "restaurant_name": {"type": "string"},
                "address": {"type": "string"},
                "cuisine": {"type": "string"},
                "opening_hours": {"type": "string"},
                "delivery_zone": {"type": "string"}
            }
        },
        "handlers.CreateRestaurantRequest": {
            "type": "object",
            "required": ["address", "restaurant_name"],
            "properties": {
                "restaurant_name": {"type": "string"},
                "address": {"type": "string"},
                "cuisine": {"type": "string"},
                "opening_hours": {"type": "string"},
                "delivery_zone": {"type": "string"}
            }
        },
        "handlers.CreateMenuItemRequest": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "handlers.UpdateOrderStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "handlers.RescheduleRequest": {
            "type": "object",
            "required": ["date"],
            "properties": {
                "date": {"type": "string"},
                "note": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "QuickBite Food Delivery API",
	Description:      "Backend for the QuickBite food-delivery platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
