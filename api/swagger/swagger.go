package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teaching Activities API",
        "description": "Read-only catalog of teachers, activities and activity types",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Teachers and the activities they teach or are responsible for"},
        {"name": "Activities", "description": "Activities with their teachers"},
        {"name": "Activity Types", "description": "Activity categories and their activities"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/teachers/": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TeacherList"}}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TeacherDetail"}},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/activities/": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ActivityList"}}}
                }
            }
        },
        "/activities/highlighted/": {
            "get": {
                "tags": ["Activities"],
                "summary": "List highlighted activities",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ActivityList"}}}
                }
            }
        },
        "/activities/{id}": {
            "get": {
                "tags": ["Activities"],
                "summary": "Get activity detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ActivityDetail"}},
                    "404": {"description": "Activity not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/activity-types/": {
            "get": {
                "tags": ["Activity Types"],
                "summary": "List activity types",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ActivityTypeBasic"}}}
                }
            }
        },
        "/activity-types/{id}": {
            "get": {
                "tags": ["Activity Types"],
                "summary": "Get activity type with its activities",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ActivityTypeFull"}},
                    "404": {"description": "Activity type not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "TeacherList": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "image_url": {"type": "string"},
                "position_title": {"type": "string"}
            }
        },
        "TeacherForActivity": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "position_title": {"type": "string"}
            }
        },
        "TeacherDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "position_title": {"type": "string"},
                "bio": {"type": "string"},
                "email": {"type": "string"},
                "image_url": {"type": "string", "x-nullable": true},
                "teaching_activities": {"type": "array", "items": {"$ref": "#/definitions/ActivityList"}},
                "responsible_activities": {"type": "array", "items": {"$ref": "#/definitions/ActivityList"}}
            }
        },
        "ActivityList": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "activity_type": {"type": "string"},
                "image_url": {"type": "string", "x-nullable": true},
                "location": {"type": "string"},
                "is_highlighted": {"type": "boolean"},
                "expertise_level": {"type": "integer"}
            }
        },
        "ActivityDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string", "x-nullable": true},
                "activity_type": {"type": "string"},
                "activity_type_id": {"type": "integer"},
                "capacity": {"type": "integer"},
                "price": {"type": "number"},
                "schedule": {"type": "string"},
                "expertise_level": {"type": "integer"},
                "is_highlighted": {"type": "boolean"},
                "location": {"type": "string"},
                "responsible_teachers": {"type": "array", "items": {"$ref": "#/definitions/TeacherForActivity"}},
                "teaching_teachers": {"type": "array", "items": {"$ref": "#/definitions/TeacherForActivity"}}
            }
        },
        "ActivityTypeBasic": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "typename": {"type": "string"},
                "short_description": {"type": "string", "x-nullable": true},
                "image_url": {"type": "string", "x-nullable": true}
            }
        },
        "ActivityTypeFull": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "typename": {"type": "string"},
                "short_description": {"type": "string", "x-nullable": true},
                "image_url": {"type": "string", "x-nullable": true},
                "long_description": {"type": "string", "x-nullable": true},
                "benefits": {"type": "string", "x-nullable": true},
                "activities": {"type": "array", "items": {"$ref": "#/definitions/ActivityDetail"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
