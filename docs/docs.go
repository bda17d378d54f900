// Package docs registers the OpenAPI description served under /swagger.
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
        "/stream": {
            "get": {
                "description": "Server-sent events; each frame is data: followed by an alert JSON object. Events already delivered to another connection are not replayed.",
                "produces": ["text/event-stream"],
                "tags": ["Stream"],
                "summary": "Live alert stream",
                "responses": {
                    "200": {"description": "One alert per event", "schema": {"$ref": "#/definitions/alert.Alert"}},
                    "500": {"description": "Streaming unsupported", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/agents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Agents"],
                "summary": "Agent graph",
                "responses": {
                    "200": {"description": "Agent graph", "schema": {"$ref": "#/definitions/agent.Graph"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/packets": {
            "get": {
                "description": "Newest first. threat, source and target match substrings; severity and layer match exactly.",
                "produces": ["application/json"],
                "tags": ["Packets"],
                "summary": "List packets",
                "parameters": [
                    {"type": "string", "description": "Threat type substring", "name": "threat", "in": "query"},
                    {"type": "string", "enum": ["low", "medium", "high"], "description": "Severity", "name": "severity", "in": "query"},
                    {"type": "string", "description": "Source agent substring", "name": "source", "in": "query"},
                    {"type": "string", "description": "Target agent substring", "name": "target", "in": "query"},
                    {"type": "string", "enum": ["Layer 2", "Layer 3", "Layer 4", "Layer 6", "Layer 7"], "description": "Protocol layer", "name": "layer", "in": "query"},
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 20, max: 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Packets", "schema": {"$ref": "#/definitions/dto.PacketListResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/packets/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Packets"],
                "summary": "Recent packets",
                "responses": {
                    "200": {"description": "Packets", "schema": {"$ref": "#/definitions/dto.PacketListResponse"}}
                }
            }
        },
        "/api/alerts/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Recent alerts",
                "parameters": [
                    {"type": "integer", "description": "Number of alerts (default: 20, max: 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Alerts", "schema": {"$ref": "#/definitions/dto.AlertListResponse"}}
                }
            }
        },
        "/api/alerts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Get alert by ID",
                "parameters": [
                    {"type": "integer", "description": "Alert ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Alert details", "schema": {"$ref": "#/definitions/alert.Alert"}},
                    "404": {"description": "Alert not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Overview"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "Counters", "schema": {"$ref": "#/definitions/overview.Overview"}}
                }
            }
        },
        "/api/branding": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Overview"],
                "summary": "Branding",
                "responses": {
                    "200": {"description": "Branding", "schema": {"$ref": "#/definitions/overview.Branding"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "Application is alive"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Application is ready"},
                    "503": {"description": "Service unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "alert.Alert": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"},
                "source_agent": {"type": "string"},
                "target_agent": {"type": "string"},
                "source_agent_id": {"type": "integer"},
                "target_agent_id": {"type": "integer"},
                "threat_type": {"type": "string"},
                "severity": {"type": "string", "enum": ["low", "medium", "high"]},
                "protocol_layer": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "agent.Agent": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string", "enum": ["normal", "caution", "quarantined"]},
                "risk_score": {"type": "number"},
                "last_seen": {"type": "string", "format": "date-time"},
                "profile": {"type": "array", "items": {"$ref": "#/definitions/agent.Profile"}}
            }
        },
        "agent.Profile": {
            "type": "object",
            "properties": {
                "attribute": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "agent.Communication": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "source_agent_id": {"type": "integer"},
                "target_agent_id": {"type": "integer"},
                "source": {"type": "string"},
                "target": {"type": "string"},
                "last_activity": {"type": "string", "format": "date-time"},
                "threat_summary": {"type": "string"}
            }
        },
        "agent.GraphNode": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "label": {"type": "string"},
                "title": {"type": "string"},
                "group": {"type": "string"}
            }
        },
        "agent.GraphEdge": {
            "type": "object",
            "properties": {
                "from": {"type": "integer"},
                "to": {"type": "integer"},
                "label": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "agent.Graph": {
            "type": "object",
            "properties": {
                "agents": {"type": "array", "items": {"$ref": "#/definitions/agent.Agent"}},
                "nodes": {"type": "array", "items": {"$ref": "#/definitions/agent.GraphNode"}},
                "edges": {"type": "array", "items": {"$ref": "#/definitions/agent.GraphEdge"}},
                "communications": {"type": "array", "items": {"$ref": "#/definitions/agent.Communication"}}
            }
        },
        "packet.Packet": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"},
                "source_agent": {"type": "string"},
                "target_agent": {"type": "string"},
                "protocol_layer": {"type": "string"},
                "threat_type": {"type": "string"},
                "severity": {"type": "string"},
                "description": {"type": "string"},
                "resolution": {"type": "string"}
            }
        },
        "dto.PacketListResponse": {
            "type": "object",
            "properties": {
                "packets": {"type": "array", "items": {"$ref": "#/definitions/packet.Packet"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "dto.AlertListResponse": {
            "type": "object",
            "properties": {
                "alerts": {"type": "array", "items": {"$ref": "#/definitions/alert.Alert"}}
            }
        },
        "overview.Overview": {
            "type": "object",
            "properties": {
                "agent_count": {"type": "integer"},
                "communication_count": {"type": "integer"},
                "total_packets": {"type": "integer"},
                "total_alerts": {"type": "integer"},
                "severity_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "alert_severity_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "high_threats": {"type": "integer"},
                "last_update": {"type": "string", "format": "date-time"}
            }
        },
        "overview.Branding": {
            "type": "object",
            "properties": {
                "team": {"type": "string"},
                "solution": {"type": "string"},
                "tagline": {"type": "string"},
                "build_date": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {}
                    }
                }
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
	Title:            "A2A Threat Center API",
	Description:      "Read API and live alert stream for the A2A multi-agent threat operations center.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
