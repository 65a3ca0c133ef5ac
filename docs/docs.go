// Package docs holds the Swagger document served under /swagger. It is
// maintained by hand alongside the handler annotations.
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
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/common.HealthResponse"
                        }
                    }
                }
            }
        },
        "/analyze_transcript": {
            "post": {
                "description": "Sends the transcript to the model and stores the review. Model failures are returned with status \"error\" and still stored.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Review a sales-call transcript",
                "parameters": [
                    {
                        "description": "Transcript to review",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.AnalyzeTranscriptRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.AnalyzeResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed body or missing transcript",
                        "schema": {
                            "$ref": "#/definitions/common.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Record could not be stored",
                        "schema": {
                            "$ref": "#/definitions/common.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/feed": {
            "get": {
                "description": "Up to 20 transcripts and 20 icebreakers merged newest first. Icebreaker items have no date field.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Feed"
                ],
                "summary": "Get the activity feed",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/feed.FeedResponse"
                        }
                    },
                    "500": {
                        "description": "Records could not be read",
                        "schema": {
                            "$ref": "#/definitions/common.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/generate_icebreaker": {
            "post": {
                "description": "Builds an outreach analysis for a LinkedIn prospect and stores it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Generate an icebreaker analysis",
                "parameters": [
                    {
                        "description": "Prospect profile",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analysis.GenerateIcebreakerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.AnalyzeResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed body or missing field",
                        "schema": {
                            "$ref": "#/definitions/common.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Record could not be stored",
                        "schema": {
                            "$ref": "#/definitions/common.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analysis.AnalyzeResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "result": {
                    "$ref": "#/definitions/common.AnalysisResult"
                }
            }
        },
        "analysis.AnalyzeTranscriptRequest": {
            "type": "object",
            "required": [
                "transcript"
            ],
            "properties": {
                "attendees": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "transcript": {
                    "type": "string"
                }
            }
        },
        "analysis.GenerateIcebreakerRequest": {
            "type": "object",
            "required": [
                "linkedin_bio",
                "role",
                "username"
            ],
            "properties": {
                "deck_url": {
                    "type": "string"
                },
                "linkedin_bio": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "common.AnalysisResult": {
            "type": "object",
            "properties": {
                "insights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "success",
                        "error"
                    ],
                    "example": "success"
                },
                "summary": {
                    "type": "string",
                    "example": "The rep handled objections well..."
                }
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "common.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "feed.FeedItemResponse": {
            "type": "object",
            "properties": {
                "analysis": {
                    "$ref": "#/definitions/common.AnalysisResult"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "transcript",
                        "icebreaker"
                    ]
                }
            }
        },
        "feed.FeedResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/feed.FeedItemResponse"
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
	Title:            "Sales Copilot API",
	Description:      "Reviews sales-call transcripts and generates LinkedIn icebreakers with a hosted LLM, and serves a merged feed of past results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
