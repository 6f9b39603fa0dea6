// Package docs holds the OpenAPI description of the booking API served at /swagger.
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
    "paths": {
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"description": "Sign-up form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/auth/demo": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Demo login",
                "parameters": [
                    {"description": "Demo role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.demoLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}
                }
            }
        },
        "/api/v1/guard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Check view access",
                "parameters": [
                    {"type": "string", "description": "View path, e.g. /dashboard", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.guardResponse"}}
                }
            }
        },
        "/api/v1/navigation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Role-conditioned navigation",
                "parameters": [
                    {"type": "string", "description": "Current view path", "name": "path", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.navigationResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/me/payment-methods": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payment-methods"],
                "summary": "List payment methods",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.paymentMethodsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payment-methods"],
                "summary": "Add a payment method",
                "parameters": [
                    {"description": "Payment method", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addPaymentMethodRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.paymentMethodResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/me/payment-methods/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["payment-methods"],
                "summary": "Remove a payment method",
                "parameters": [
                    {"type": "string", "description": "Payment method ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.toastResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/me/payment-methods/{id}/default": {
            "post": {
                "produces": ["application/json"],
                "tags": ["payment-methods"],
                "summary": "Make a payment method the default",
                "parameters": [
                    {"type": "string", "description": "Payment method ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.paymentMethodsResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/me/payment-methods/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["payment-methods"],
                "summary": "Enable or disable a payment method",
                "parameters": [
                    {"type": "string", "description": "Payment method ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.paymentMethodResponse"}}
                }
            }
        },
        "/api/v1/me/favorites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List favorite salons",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.favoritesResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Add a salon to favorites",
                "parameters": [
                    {"description": "Salon", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.favoriteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.favoriteResponse"}}
                }
            }
        },
        "/api/v1/me/favorites/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Remove a favorite",
                "parameters": [
                    {"type": "string", "description": "Favorite ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.toastResponse"}}
                }
            }
        },
        "/api/v1/me/favorites/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Toggle a salon in favorites",
                "parameters": [
                    {"description": "Salon", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.favoriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.favoriteToggleResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["client", "salon"]},
                "avatar": {"type": "string"}
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["success", "error", "info"]},
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "domain.NavItem": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "path": {"type": "string"},
                "icon": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "domain.PaymentMethod": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string", "enum": ["card", "paypal"]},
                "brand": {"type": "string"},
                "last4": {"type": "string"},
                "holder_name": {"type": "string"},
                "exp_month": {"type": "integer"},
                "exp_year": {"type": "integer"},
                "is_default": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Favorite": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "salon_id": {"type": "string"},
                "salon_name": {"type": "string"},
                "address": {"type": "string"},
                "rating": {"type": "number"},
                "image_url": {"type": "string"},
                "added_at": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["client", "salon"]}
            }
        },
        "handler.demoLoginRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["client", "salon"]}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "identity": {"$ref": "#/definitions/domain.Identity"},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.guardResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "allowed": {"type": "boolean"},
                "redirect_to": {"type": "string"}
            }
        },
        "handler.navigationResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.NavItem"}}
            }
        },
        "handler.addPaymentMethodRequest": {
            "type": "object",
            "required": ["kind", "holder_name"],
            "properties": {
                "kind": {"type": "string", "enum": ["card", "paypal"]},
                "brand": {"type": "string"},
                "last4": {"type": "string"},
                "holder_name": {"type": "string"},
                "exp_month": {"type": "integer"},
                "exp_year": {"type": "integer"}
            }
        },
        "handler.paymentMethodsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.PaymentMethod"}},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.paymentMethodResponse": {
            "type": "object",
            "properties": {
                "method": {"$ref": "#/definitions/domain.PaymentMethod"},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.favoriteRequest": {
            "type": "object",
            "required": ["salon_id", "salon_name"],
            "properties": {
                "salon_id": {"type": "string"},
                "salon_name": {"type": "string"},
                "address": {"type": "string"},
                "rating": {"type": "number"},
                "image_url": {"type": "string"}
            }
        },
        "handler.favoritesResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Favorite"}},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.favoriteResponse": {
            "type": "object",
            "properties": {
                "favorite": {"$ref": "#/definitions/domain.Favorite"},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.favoriteToggleResponse": {
            "type": "object",
            "properties": {
                "favorited": {"type": "boolean"},
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.toastResponse": {
            "type": "object",
            "properties": {
                "toast": {"$ref": "#/definitions/domain.Notification"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Salon Booking API",
	Description:      "Device sessions, guarded views, navigation and personal registries of the salon booking app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
