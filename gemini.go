package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion      = "europe-west1"
	defaultGeminiModel = "gemini-2.5-flash"
)

// GeminiConfig selects the Gemini backend. An APIKey uses the Gemini API;
// otherwise ProjectID and Region select VertexAI with Application Default
// Credentials (GOOGLE_APPLICATION_CREDENTIALS).
type GeminiConfig struct {
	APIKey    string
	ProjectID string
	Region    string
	Model     string
	BaseURL   string
}

// GeminiClient wraps the Google GenAI client.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client for the configured backend.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}

	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}
	if cfg.APIKey != "" {
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	} else {
		if cfg.Region == "" {
			cfg.Region = defaultRegion
		}
		cc.Project = cfg.ProjectID
		cc.Location = cfg.Region
		cc.Backend = genai.BackendVertexAI
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// Complete sends the messages to Gemini and returns the JSON text it
// produced. System messages become the system instruction.
func (g *GeminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var system []string
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.7)),
		ResponseMIMEType: "application/json",
	}
	// Gemini needs at least one user turn.
	if len(contents) == 0 {
		contents = []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}}
	} else if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errEmptyCompletion
	}
	return text, nil
}
