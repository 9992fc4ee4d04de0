// Package docs holds the swagger description of the storefront API.
package docs

import "github.com/swaggo/swag"

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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service health",
                "operationId": "health",
                "responses": {
                    "200": {
                        "description": "Service is up",
                        "schema": {"$ref": "#/definitions/handlers.HealthResponse"}
                    }
                }
            }
        },
        "/create-checkout-session": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Create a hosted card checkout session",
                "operationId": "createCheckoutSession",
                "parameters": [
                    {
                        "description": "Cart contents",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CheckoutSessionRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Redirect URL for the hosted checkout page",
                        "schema": {"$ref": "#/definitions/handlers.CheckoutSessionResponse"}
                    },
                    "400": {
                        "description": "Empty cart, unknown product or malformed body",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    },
                    "500": {
                        "description": "Provider or configuration error",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    }
                }
            }
        },
        "/create-cimb-payment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Initiate a CIMB bank payment",
                "operationId": "createCimbPayment",
                "parameters": [
                    {
                        "description": "Amount in minor units with optional currency and description",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.BankPaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Normalized payment",
                        "schema": {"$ref": "#/definitions/services.PaymentResult"}
                    },
                    "400": {
                        "description": "Invalid amount or malformed body",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    },
                    "401": {
                        "description": "Bank rejected the client credentials",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    },
                    "500": {
                        "description": "Configuration or provider error",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    },
                    "default": {
                        "description": "Bank rejection, carrying the bank's status",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "server": {"type": "string"}
            }
        },
        "handlers.CartItemRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "apple"},
                "quantity": {"type": "integer", "minimum": 0, "example": 2}
            }
        },
        "handlers.CheckoutSessionRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/handlers.CartItemRequest"}
                }
            }
        },
        "handlers.CheckoutSessionResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"}
            }
        },
        "handlers.BankPaymentRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "150000"},
                "currency": {"type": "string", "example": "MYR"},
                "description": {"type": "string"}
            }
        },
        "services.PaymentResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "provider": {"type": "string", "example": "cimb_connect_api"},
                "environment": {"type": "string", "enum": ["sandbox", "production"]},
                "payment_id": {"type": "string"},
                "amount": {"type": "number"},
                "currency": {"type": "string"},
                "beneficiary_account": {"type": "string"},
                "beneficiary_name": {"type": "string"},
                "description": {"type": "string"},
                "transaction_status": {"type": "string", "example": "PENDING"},
                "consent_url": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4242",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Northborne O Sabah Storefront API",
	Description:      "Checkout and bank payment endpoints backing the storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
