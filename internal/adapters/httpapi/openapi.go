package httpapi

import (
	"net/http"

	"github.com/jukebox-go/jukebox/internal/httpjson"
)

// handleOpenAPI renvoie un document OpenAPI minimal de l'API v1.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	jsonOK := func(schemaRef string) map[string]any {
		return map[string]any{
			"description": "OK",
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": schemaRef},
				},
			},
		}
	}

	jsonErr := map[string]any{
		"description": "Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Error"},
			},
		},
	}

	indexParam := map[string]any{
		"name":        "index",
		"in":          "path",
		"required":    true,
		"description": "Position dans la collection complète (ViewItem.index).",
		"schema":      map[string]any{"type": "integer", "minimum": 0},
	}
	confirmParam := map[string]any{
		"name":     "confirm",
		"in":       "query",
		"required": false,
		"schema":   map[string]any{"type": "boolean"},
	}

	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Jukebox API",
			"version": "v1",
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Error": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"error": map[string]any{"type": "string"},
						"code": map[string]any{
							"type": "string",
							"enum": []any{"missing_fields", "invalid_url", "duplicate_entry", "index_out_of_range", "not_confirmed", "invalid_theme"},
						},
					},
					"required": []any{"error"},
				},
				"Entry": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":  map[string]any{"type": "string"},
						"url":   map[string]any{"type": "string"},
						"plays": map[string]any{"type": "integer", "minimum": 0},
					},
					"required":             []any{"name", "url", "plays"},
					"additionalProperties": false,
				},
				"Songs": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"songs": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/components/schemas/Entry"}},
					},
				},
				"View": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"items": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"entry": map[string]any{"$ref": "#/components/schemas/Entry"},
									"index": map[string]any{"type": "integer"},
								},
							},
						},
						"total":      map[string]any{"type": "integer"},
						"totalPages": map[string]any{"type": "integer"},
						"page":       map[string]any{"type": "integer"},
						"pageSize":   map[string]any{"type": "integer"},
					},
				},
				"PlayResult": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"songs":    map[string]any{"type": "array", "items": map[string]any{"$ref": "#/components/schemas/Entry"}},
						"index":    map[string]any{"type": "integer"},
						"url":      map[string]any{"type": "string"},
						"embedUrl": map[string]any{"type": "string"},
					},
				},
				"Theme": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"theme": map[string]any{"type": "string", "enum": []any{"light", "dark"}},
					},
					"required": []any{"theme"},
				},
			},
		},
		"paths": map[string]any{
			"/api/v1/health": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
			"/api/v1/version": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
			"/api/v1/songs": map[string]any{
				"get": map[string]any{
					"parameters": []any{
						map[string]any{"name": "q", "in": "query", "schema": map[string]any{"type": "string"}},
						map[string]any{"name": "sort", "in": "query", "schema": map[string]any{"type": "string", "enum": []any{"plays"}}},
						map[string]any{"name": "page", "in": "query", "schema": map[string]any{"type": "integer", "minimum": 1}},
						map[string]any{"name": "pageSize", "in": "query", "schema": map[string]any{"type": "integer", "minimum": 1, "maximum": 1000}},
					},
					"responses": map[string]any{"200": jsonOK("#/components/schemas/View"), "400": jsonErr},
				},
				"post": map[string]any{
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"name": map[string]any{"type": "string"},
										"url":  map[string]any{"type": "string"},
									},
									"required": []any{"name", "url"},
								},
							},
						},
					},
					"responses": map[string]any{"201": jsonOK("#/components/schemas/Songs"), "400": jsonErr, "409": jsonErr},
				},
				"delete": map[string]any{
					"parameters": []any{confirmParam},
					"responses":  map[string]any{"200": jsonOK("#/components/schemas/Songs"), "428": jsonErr},
				},
			},
			"/api/v1/songs/all": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": jsonOK("#/components/schemas/Songs")}},
			},
			"/api/v1/songs/{index}": map[string]any{
				"delete": map[string]any{
					"parameters": []any{indexParam, confirmParam},
					"responses":  map[string]any{"200": jsonOK("#/components/schemas/Songs"), "404": jsonErr, "428": jsonErr},
				},
			},
			"/api/v1/songs/{index}/play": map[string]any{
				"post": map[string]any{
					"parameters": []any{indexParam},
					"responses":  map[string]any{"200": jsonOK("#/components/schemas/PlayResult"), "404": jsonErr},
				},
			},
			"/api/v1/export": map[string]any{
				"get": map[string]any{
					"parameters": []any{
						map[string]any{"name": "format", "in": "query", "schema": map[string]any{"type": "string", "enum": []any{"json", "txt"}}},
					},
					"responses": map[string]any{
						"200": map[string]any{"description": "canciones.json ou canciones.txt"},
						"204": map[string]any{"description": "Playlist vide, aucun fichier"},
						"400": jsonErr,
					},
				},
			},
			"/api/v1/theme": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": jsonOK("#/components/schemas/Theme")}},
				"put": map[string]any{
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/Theme"}},
						},
					},
					"responses": map[string]any{"200": jsonOK("#/components/schemas/Theme"), "400": jsonErr},
				},
			},
			"/api/v1/theme/toggle": map[string]any{
				"post": map[string]any{"responses": map[string]any{"200": jsonOK("#/components/schemas/Theme")}},
			},
			"/api/v1/events": map[string]any{
				"get": map[string]any{
					"description": "Flux SSE : playlist.changed, player.open, theme.changed.",
					"responses":   map[string]any{"200": map[string]any{"description": "text/event-stream"}},
				},
			},
		},
	}

	httpjson.Write(w, http.StatusOK, doc)
}
