package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// GeminiGW generates assistant answers with the Gemini API
type GeminiGW struct {
	client *genai.Client
	model  string
}

// NewGeminiGW creates a Gemini client for the configured key and model
func NewGeminiGW(ctx context.Context, cfg *models.Config) (*GeminiGW, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Gemini.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Gemini.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	return &GeminiGW{
		client: client,
		model:  model,
	}, nil
}

// GenerateText sends a single-turn prompt and returns the concatenated text
// of the first candidate
func (g *GeminiGW) GenerateText(ctx context.Context, prompt string) (string, error) {
	var text string
	err := nrpkg.WithExternalSegment(ctx, "genai", "GenerateContent", "https://generativelanguage.googleapis.com", func() error {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return err
		}
		text = resp.Text()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return text, nil
}
