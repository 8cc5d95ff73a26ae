// Package docs holds the Swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service is up"}
                }
            }
        },
        "/flows": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["flows"],
                "summary": "List flows",
                "description": "List the generation features and the active backend",
                "responses": {
                    "200": {"description": "Available flows", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/flows/{feature}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flows"],
                "summary": "Run a flow",
                "description": "Validate the request, make one generation call and return the checked output",
                "parameters": [
                    {
                        "enum": ["scriptAndHooks", "hashtags", "videoIdeas", "optimizeContent", "captions", "remix", "thumbnailPrompt"],
                        "type": "string",
                        "description": "Feature",
                        "name": "feature",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request of the selected feature",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Flow output", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Unknown feature", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/thumbnails": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["thumbnails"],
                "summary": "Generate a thumbnail image",
                "description": "Render a 1280x720 image from a prompt. Failures return a placeholder image, never an error.",
                "parameters": [
                    {
                        "description": "Thumbnail request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/thumbnail.Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "Image or placeholder", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "400": {"description": "Malformed request body", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/usage": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usage"],
                "summary": "Daily usage",
                "description": "Calls and token counts per feature for a UTC day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Day in YYYY-MM-DD, defaults to today",
                        "name": "day",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Usage counters", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "400": {"description": "Invalid day", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "description": "Error response",
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string", "example": "Invalid request"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "api.SuccessResponse": {
            "description": "Success response",
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
            }
        },
        "thumbnail.Request": {
            "type": "object",
            "properties": {
                "userPrompt": {"type": "string"},
                "videoDescription": {"type": "string"},
                "videoTitle": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "NovaCreate API",
	Description:      "Generation flows for video creators: scripts, hashtags, ideas, optimization, captions, remixes and thumbnails",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
