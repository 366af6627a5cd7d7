// Package insight generates business insights from sales data with Gemini.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"cofipos/config"
	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type geminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiGenerator creates an InsightGenerator backed by the Gemini API.
// Returns nil without error when insights are disabled, so the rest of the
// application starts without LLM credentials.
func NewGeminiGenerator(ctx context.Context, cfg *config.InsightsConfig, logger *slog.Logger) (service.InsightGenerator, error) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("Insights disabled, skipping Gemini client")

		return nil, nil
	}
	if cfg.APIKey == "" {
		return nil, errors.New("insights API key is required when insights are enabled")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiGenerator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateInsights asks Gemini for actionable observations over the snapshot.
// The response is constrained to a JSON schema so decoding never depends on
// prompt obedience.
func (g *geminiGenerator) GenerateInsights(ctx context.Context, req *service.InsightRequest) (*entity.InsightReport, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightSchema(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate content")
	}

	report := new(entity.InsightReport)
	if err := json.Unmarshal([]byte(resp.Text()), report); err != nil {
		return nil, errors.Wrap(err, "failed to decode insight response")
	}

	g.logger.InfoContext(ctx, "insights generated",
		slog.String("model", g.model),
		slog.Int("count", len(report.Insights)))

	return report, nil
}

func buildPrompt(req *service.InsightRequest) (string, error) {
	products, err := json.Marshal(req.Products)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode products")
	}

	orders, err := json.Marshal(req.Orders)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode orders")
	}

	var b strings.Builder
	b.WriteString("You are a business analyst for a small coffee shop. ")
	b.WriteString("Analyze the catalog and recent sales below and produce 3 to 5 short, actionable insights ")
	b.WriteString("covering stock levels, best sellers, pricing and sales patterns.\n\n")
	fmt.Fprintf(&b, "Catalog:\n%s\n\nRecent orders:\n%s\n", products, orders)

	return b.String(), nil
}

func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"insights": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"priority":    {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
						"icon":        {Type: genai.TypeString},
					},
					Required: []string{"title", "description", "priority", "icon"},
				},
			},
		},
		Required: []string{"insights"},
	}
}
