// Package gateway holds clients for outbound services.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-3-flash-preview"
	DefaultTemperature = 0.7
)

var ErrMissingAPIKey = errors.New("gemini: API key is not configured")

// GeminiConfig configures GeminiClient.
type GeminiConfig struct {
	APIKey string
	Model  string
	// Temperature 0 is a valid setting; negative values select DefaultTemperature.
	Temperature float32
	// BaseURL overrides the Gemini API endpoint; empty uses the SDK default.
	BaseURL string
}

// GeminiClient generates text with the Gemini API.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient builds a client. A missing API key is not an error here:
// the client is returned unconfigured and every call fails with ErrMissingAPIKey.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	c := &GeminiClient{model: model, temperature: temperature}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return c, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// Configured reports whether the client has credentials.
func (c *GeminiClient) Configured() bool {
	return c != nil && c.client != nil
}

// Model returns the model name used for generation.
func (c *GeminiClient) Model() string {
	return c.model
}

// GenerateText sends prompt with the given system instruction and returns the
// response text. A response without text yields "" and no error.
func (c *GeminiClient) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrMissingAPIKey
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}
