// Package docs Rosreestr Cadastral Tools API.
//
// Инструменты для получения координат и сведений об объектах недвижимости
// по кадастровому номеру: одиночный запрос, пакетный запрос и проверка
// геолокации IP. Тот же набор инструментов доступен по MCP через stdio.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/tools": {
            "get": {
                "description": "Возвращает имена, описания и JSON-схемы аргументов доступных инструментов",
                "produces": ["application/json"],
                "tags": ["Tools"],
                "summary": "Список инструментов",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/dto.Tool"}
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/tools/{name}": {
            "post": {
                "description": "Выполняет инструмент (get_cadastral_coordinates, batch_get_cadastral_coordinates, check_ip_location).\nОшибки инструментов возвращаются в теле ответа в виде {\"error\": \"...\"} со статусом 200.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tools"],
                "summary": "Вызов инструмента",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Имя инструмента",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Аргументы инструмента",
                        "name": "arguments",
                        "in": "body",
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Результат инструмента",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.Tool": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "inputSchema": {"type": "object", "additionalProperties": true}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Rosreestr Cadastral Tools API",
	Description:      "Координаты и сведения об объектах недвижимости по кадастровому номеру.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
