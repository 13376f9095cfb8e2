// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/darasahq/darasa/internal/platform/apperr"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiTimeout = 30 * time.Second
)

// responseSchema forces the model into the exact [CourseOutline] shape.
// Structured output removes prompt-format drift: responses either parse or
// the request failed.
var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"courseTitle":       map[string]any{"type": "STRING"},
		"courseDescription": map[string]any{"type": "STRING"},
		"modules": map[string]any{
			"type": "ARRAY",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"moduleTitle": map[string]any{"type": "STRING"},
					"lessons": map[string]any{
						"type":  "ARRAY",
						"items": map[string]any{"type": "STRING"},
					},
				},
				"required": []string{"moduleTitle", "lessons"},
			},
		},
	},
	"required": []string{"courseTitle", "courseDescription", "modules"},
}

// geminiRequest is the generateContent payload.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

// geminiResponse is the subset of the generateContent response we consume.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient implements [Generator] against the Gemini generateContent API.
type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiClient constructs a Gemini-backed [Generator].
//
// An empty apiKey is allowed: the client constructs fine but every Generate
// call reports the feature as unavailable. This keeps local environments
// bootable without a credential.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(geminiTimeout).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

/*
Generate requests a structured course outline for the topic.

Parameters:
  - context: context.Context
  - topic: string (free-text course subject)

Returns:
  - *CourseOutline: The parsed outline
  - error: ServiceUnavailable when no API key is configured; Internal with a
    generic client message for transport, quota, or parse failures (raw
    provider errors never reach clients)
*/
func (gc *GeminiClient) Generate(context context.Context, topic string) (*CourseOutline, error) {
	if gc.apiKey == "" {
		return nil, apperr.ServiceUnavailable("Outline generation is currently unavailable")
	}

	prompt := fmt.Sprintf(
		"Create a course outline for an online course about: %s. "+
			"Produce a concise marketable course title, a two-sentence description, "+
			"and 4 to 6 modules each containing 3 to 5 lesson titles.",
		topic,
	)

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	var parsed geminiResponse
	response, err := gc.client.R().
		SetContext(context).
		SetQueryParam("key", gc.apiKey).
		SetBody(payload).
		SetResult(&parsed).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", gc.model))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("gemini: request failed: %w", err))
	}
	if response.IsError() {
		return nil, apperr.Internal(fmt.Errorf("gemini: request rejected (status %d)", response.StatusCode()))
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, apperr.Internal(fmt.Errorf("gemini: empty response"))
	}

	outline := &CourseOutline{}
	if err := json.Unmarshal([]byte(parsed.Candidates[0].Content.Parts[0].Text), outline); err != nil {
		return nil, apperr.Internal(fmt.Errorf("gemini: malformed outline payload: %w", err))
	}

	return outline, nil
}
