package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"prospect-engine/internal/domain"
)

// Generator produces free-text audit copy for one candidate. The text is
// expected to follow the Best/Lacking/Competitor convention but nothing is
// validated here; Normalize owns the tolerance for malformed output.
type Generator interface {
	Audit(ctx context.Context, c domain.Candidate, pair domain.Pair) (string, error)
}

const defaultModel = "gemini-1.5-flash"

// GeminiGenerator implements Generator over the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Audit(ctx context.Context, c domain.Candidate, pair domain.Pair) (string, error) {
	prompt := fmt.Sprintf(
		"Audit for %s (%s) in %s. Why they lack a website. Format: Best: [Text] | Lacking: [Text] | Competitor: [Text]",
		c.Name, pair.Category, pair.Location,
	)

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate audit: %w", err)
	}
	return extractText(resp)
}

func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
