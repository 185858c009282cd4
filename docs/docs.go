// Package docs holds the OpenAPI document served by the local runner at /swagger.
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
        "/health": {
            "get": {
                "description": "Reports database and object storage reachability",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/sync": {
            "post": {
                "description": "Fetches the current weather and stores one observation",
                "produces": ["application/json"],
                "tags": ["etl"],
                "summary": "Run the sync unit",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.InvocationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.InvocationResponse"}}
                }
            }
        },
        "/export": {
            "post": {
                "description": "Writes the last day of observations as a CSV object",
                "produces": ["application/json"],
                "tags": ["etl"],
                "summary": "Run the export unit",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.InvocationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.InvocationResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string"},
                "storage": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        },
        "model.InvocationResponse": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "statusCode": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/weather-etl",
	Schemes:          []string{},
	Title:            "weather-etl",
	Description:      "Local runner for the weather sync and export units",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
