package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Zenith API Documentation",
        "title": "Zenith API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/tasks": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Create Task",
                "description": "Create a task on today's list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "description": "Task fields",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string", "example": "Write weekly review"},
                                "description": {"type": "string"},
                                "energy": {"type": "integer", "example": 6},
                                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                                "timeEstimate": {"type": "integer", "example": 30},
                                "focusType": {"type": "string", "enum": ["deep_work", "maintenance", "creative"]},
                                "scheduledFor": {"type": "string", "format": "date-time"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Task created"},
                    "400": {"description": "Missing title or out-of-range field"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "description": "List unarchived tasks for today or the given date",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "date", "type": "string", "description": "YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "Task list"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/tasks/{id}/complete": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Complete Task",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Task completed"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/api/tasks/{id}/move-to-tomorrow": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Move Task To Tomorrow",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Task moved"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/api/tasks/end-day": {
            "post": {
                "tags": ["Tasks"],
                "summary": "End Day",
                "description": "Archive every unarchived task and close the day session",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Count of archived tasks"}
                }
            }
        },
        "/api/tasks/start-day": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Start Day",
                "description": "Reactivate yesterday's moved tasks and open a day session",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Count of reactivated tasks"}
                }
            }
        },
        "/api/tasks/history": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Task History",
                "description": "Archived tasks grouped by archive date, newest first",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Grouped history"}
                }
            }
        },
        "/api/mood": {
            "post": {
                "tags": ["Mood"],
                "summary": "Log Mood",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "entry",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "mood": {"type": "integer", "example": 4},
                                "energy": {"type": "integer", "example": 7},
                                "reflection": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Entry recorded"},
                    "400": {"description": "Out-of-range mood or energy"}
                }
            }
        },
        "/api/mood/history": {
            "get": {
                "tags": ["Mood"],
                "summary": "Mood History",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "days", "type": "integer", "description": "Window in days, default 7"}
                ],
                "responses": {
                    "200": {"description": "Entries oldest first"}
                }
            }
        },
        "/api/mood/latest": {
            "get": {
                "tags": ["Mood"],
                "summary": "Latest Mood",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Most recent entry or null"}
                }
            }
        },
        "/api/users/day-state": {
            "get": {
                "tags": ["Users"],
                "summary": "Day Session State",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Whether a day session is open"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the identity provider token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Zenith API",
	Description:      "Zenith API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
