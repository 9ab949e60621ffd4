// Package docs holds the swagger spec served at /swagger/*any.
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
    "securityDefinitions": {
        "AdminBasic": {"type": "basic"},
        "BearerToken": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness", "responses": {"200": {"description": "pong"}}}},
        "/projects/{projectId}": {
            "get": {"tags": ["projects"], "summary": "Project metadata", "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "project"}, "404": {"$ref": "#/responses/error"}}},
            "put": {"tags": ["projects"], "summary": "Create or update a project", "security": [{"AdminBasic": []}, {"BearerToken": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "project"}, "400": {"$ref": "#/responses/error"}, "401": {"$ref": "#/responses/error"}, "403": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/contract": {
            "post": {"tags": ["projects"], "summary": "Start a pledge with the payment processor", "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "order"}, "400": {"$ref": "#/responses/error"}, "502": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/contract/{orderId}": {
            "patch": {"tags": ["projects"], "summary": "Capture an approved order and record the pledge", "parameters": [{"$ref": "#/parameters/projectId"}, {"$ref": "#/parameters/orderId"}], "responses": {"200": {"description": "capture"}, "502": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/counter": {
            "get": {"tags": ["projects"], "summary": "Amount pledged so far", "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "counter"}}}
        },
        "/projects/{projectId}/successInvoice": {
            "get": {"tags": ["projects"], "summary": "Pledge lines of a succeeded project", "security": [{"AdminBasic": []}, {"BearerToken": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "invoice"}, "403": {"$ref": "#/responses/error"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/refund": {
            "post": {"tags": ["sweeps"], "summary": "Refund every eligible pledge", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"201": {"description": "refund sweep"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/bonuses": {
            "get": {"tags": ["sweeps"], "summary": "Refund bonuses awaiting payout", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "bonuses"}, "404": {"$ref": "#/responses/error"}}},
            "post": {"tags": ["sweeps"], "summary": "Pay every pending bonus in one payout batch", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"201": {"description": "bonus sweep"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/projects/{projectId}/bonuses/{orderId}": {
            "delete": {"tags": ["sweeps"], "summary": "Mark a bonus as paid", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}, {"$ref": "#/parameters/orderId"}], "responses": {"200": {"description": "settled"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/contract/{orderId}": {
            "put": {"tags": ["ledger"], "summary": "Record a captured pledge", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}, {"$ref": "#/parameters/orderId"}], "responses": {"200": {"description": "recorded"}, "400": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/counter": {
            "get": {"tags": ["ledger"], "summary": "Ledger total and anonymised orders", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "counter"}}}
        },
        "/ledgers/{projectId}/refunds": {
            "get": {"tags": ["ledger"], "summary": "Capture ids eligible for refund", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "capture ids"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/refunds/{captureId}": {
            "delete": {"tags": ["ledger"], "summary": "Mark a capture as refunded", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}, {"name": "captureId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "settled"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/bonuses": {
            "get": {"tags": ["ledger"], "summary": "Refund bonuses awaiting payout", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "bonuses"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/bonuses/{orderId}": {
            "delete": {"tags": ["ledger"], "summary": "Mark a bonus as paid", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}, {"$ref": "#/parameters/orderId"}], "responses": {"200": {"description": "settled"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/ledgers/{projectId}/successInvoice": {
            "get": {"tags": ["ledger"], "summary": "Pledge lines of a succeeded project", "security": [{"AdminBasic": []}], "parameters": [{"$ref": "#/parameters/projectId"}], "responses": {"200": {"description": "invoice"}, "404": {"$ref": "#/responses/error"}}}
        },
        "/acls/grants": {
            "get": {"tags": ["acls"], "summary": "Grants on a resource", "security": [{"AdminBasic": []}, {"BearerToken": []}], "parameters": [{"name": "resource", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "grants"}, "401": {"$ref": "#/responses/error"}, "403": {"$ref": "#/responses/error"}}},
            "post": {"tags": ["acls"], "summary": "Grant permissions the caller holds to another user", "security": [{"AdminBasic": []}, {"BearerToken": []}], "responses": {"200": {"description": "grants"}, "400": {"$ref": "#/responses/error"}, "401": {"$ref": "#/responses/error"}, "403": {"$ref": "#/responses/error"}}}
        }
    },
    "parameters": {
        "projectId": {"name": "projectId", "in": "path", "required": true, "type": "string"},
        "orderId": {"name": "orderId", "in": "path", "required": true, "type": "string"}
    },
    "responses": {
        "error": {"description": "error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Dominant Assurance Contract API",
	Description:      "Pledge ledger, project metadata and refund/bonus sweeps for dominant assurance contracts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
