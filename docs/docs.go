// Package docs registra la especificación OpenAPI del servicio para el UI de
// Swagger. Regenerar con: swag init -g cmd/api/main.go -o docs
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
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Iniciar sesión",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Usuario de la sesión actual con sus permisos por módulo",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/auth/navegacion": {
            "get": {
                "tags": ["auth"],
                "summary": "Árbol de navegación filtrado por el rol de la sesión",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/auth/password": {
            "put": {
                "tags": ["auth"],
                "summary": "Cambiar la contraseña propia",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CambiarPasswordRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/usuarios": {
            "get": {
                "tags": ["usuarios"],
                "summary": "Listar cuentas del sistema",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/usuarios/{id}/password": {
            "put": {
                "tags": ["usuarios"],
                "summary": "Cambiar la contraseña de otro usuario (solo administradores)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/areas": {
            "get": {
                "tags": ["areas"],
                "summary": "Listar áreas activas",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "busqueda", "in": "query", "type": "string"},
                    {"name": "departamento", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["areas"],
                "summary": "Crear un área protegida",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/areas/mapa": {
            "get": {
                "tags": ["areas"],
                "summary": "Puntos del mapa esquemático (solo áreas activas)",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/areas/{id}": {
            "get": {
                "tags": ["areas"],
                "summary": "Obtener un área por ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            },
            "put": {
                "tags": ["areas"],
                "summary": "Actualizar un área protegida",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/areas/{id}/desactivacion": {
            "get": {
                "tags": ["areas"],
                "summary": "Verificar si el área puede desactivarse (pre-check)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/areas/{id}/estado": {
            "put": {
                "tags": ["areas"],
                "summary": "Activar o desactivar un área",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/guardarecursos": {
            "get": {
                "tags": ["guardarecursos"],
                "summary": "Listar guardarecursos",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "busqueda", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["guardarecursos"],
                "summary": "Registrar un guardarecurso",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/guardarecursos/{id}": {
            "get": {
                "tags": ["guardarecursos"],
                "summary": "Obtener un guardarecurso por ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            },
            "put": {
                "tags": ["guardarecursos"],
                "summary": "Actualizar un guardarecurso",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/actividades": {
            "get": {
                "tags": ["actividades"],
                "summary": "Listar actividades visibles para la sesión",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "estado", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["actividades"],
                "summary": "Programar una actividad",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/actividades/{id}": {
            "get": {
                "tags": ["actividades"],
                "summary": "Obtener una actividad por ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/actividades/{id}/estado": {
            "put": {
                "tags": ["actividades"],
                "summary": "Cambiar el estado de una actividad",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/evidencias": {
            "get": {
                "tags": ["evidencias"],
                "summary": "Listar evidencias visibles para la sesión",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "busqueda", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["evidencias"],
                "summary": "Registrar evidencia fotográfica",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/evidencias/{id}": {
            "get": {
                "tags": ["evidencias"],
                "summary": "Obtener una evidencia por ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/evidencias/{id}/relacionados": {
            "get": {
                "tags": ["evidencias"],
                "summary": "Resolver guardarecurso, actividad y área de una evidencia",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/cumplimiento/metricas": {
            "get": {
                "tags": ["cumplimiento"],
                "summary": "Listar métricas visibles para la sesión",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "periodo", "in": "query", "type": "string"},
                    {"name": "guardarecurso", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["cumplimiento"],
                "summary": "Crear una métrica de cumplimiento",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/cumplimiento/metricas/{id}": {
            "put": {
                "tags": ["cumplimiento"],
                "summary": "Actualizar meta y valor real de una métrica",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/api/cumplimiento/estadisticas": {
            "get": {
                "tags": ["cumplimiento"],
                "summary": "Agregado del panel de cumplimiento",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/reportes/cumplimiento": {
            "post": {
                "tags": ["reportes"],
                "summary": "Generar el reporte de cumplimiento en PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"type": "object"}
            }
        },
        "dto.CambiarPasswordRequest": {
            "type": "object",
            "properties": {
                "actual": {"type": "string"},
                "nueva": {"type": "string"},
                "confirmacion": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Guardarecursos CONAP API",
	Description:      "API de gestión de guardarecursos, áreas protegidas y cumplimiento del CONAP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
