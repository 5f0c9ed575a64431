// Package docs registers the OpenAPI document served under /swagger.
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
        "/board": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Whole board",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}}
                }
            }
        },
        "/board/tasks": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Replace the whole task list",
                "parameters": [
                    {"description": "Complete task list", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ReorderTasksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/columns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "Columns left to right",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "Add a column at the right end of the board",
                "parameters": [
                    {"description": "Column", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateColumnRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ColumnResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/columns/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "Rename a column",
                "parameters": [
                    {"type": "string", "description": "Column ID", "name": "id", "in": "path", "required": true},
                    {"description": "New title", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateColumnRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ColumnResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Columns"],
                "summary": "Delete a column and all of its tasks",
                "parameters": [
                    {"type": "string", "description": "Column ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/columns/{id}/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "Tasks of a column in display order",
                "parameters": [
                    {"type": "string", "description": "Column ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/tasks": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Add a task at the end of a column",
                "parameters": [
                    {"description": "Task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "One task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Edit a task's title and description",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/drag/over": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Drag"],
                "summary": "Report that the dragged task hovers over a task or column",
                "parameters": [
                    {"description": "Drag observation; an empty over_id means over nothing", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DragOverRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DragOverResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/generate-prompt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prompt"],
                "summary": "Generate a coding-assistant prompt for a task",
                "parameters": [
                    {"description": "Task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GeneratePromptRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GeneratePromptResponse"}},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "handler.BoardColumnResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "order": {"type": "integer"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}
            }
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/handler.BoardColumnResponse"}}
            }
        },
        "handler.ColumnResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "order": {"type": "integer"}
            }
        },
        "handler.CreateColumnRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"}
            }
        },
        "handler.UpdateColumnRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"}
            }
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "column_id": {"type": "string"},
                "order": {"type": "integer"},
                "created_at": {"type": "integer"}
            }
        },
        "handler.CreateTaskRequest": {
            "type": "object",
            "required": ["column_id", "title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "column_id": {"type": "string"}
            }
        },
        "handler.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handler.ReorderTaskItem": {
            "type": "object",
            "required": ["column_id", "id"],
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "column_id": {"type": "string"},
                "order": {"type": "integer"},
                "created_at": {"type": "integer"}
            }
        },
        "handler.ReorderTasksRequest": {
            "type": "object",
            "required": ["tasks"],
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/handler.ReorderTaskItem"}}
            }
        },
        "handler.DragOverRequest": {
            "type": "object",
            "required": ["active_id"],
            "properties": {
                "active_id": {"type": "string"},
                "over_id": {"type": "string"}
            }
        },
        "handler.DragOverResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["none", "reassign", "reorder"]},
                "board": {"$ref": "#/definitions/handler.BoardResponse"}
            }
        },
        "handler.GeneratePromptRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handler.GeneratePromptResponse": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanban Board API",
	Description:      "Single-board kanban with drag reconciliation and task prompt generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
