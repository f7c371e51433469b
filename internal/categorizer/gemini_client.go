package categorizer

import (
	"context"
	"fmt"
	"time"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// GeminiConfig holds the settings for GeminiClient.
type GeminiConfig struct {
	APIKey            string
	Model             string
	RequestsPerMinute int
	Timeout           time.Duration
}

// GeminiClient implements AIClient on the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	limiter *rate.Limiter
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiClient opens a Gemini client. The caller must Close it.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger logging.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0)

	logger.Debug("Gemini client ready",
		logging.F("model", cfg.Model),
		logging.F("requests_per_minute", cfg.RequestsPerMinute))

	return &GeminiClient{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// SuggestCategory asks the model for one of the allowed categories.
func (g *GeminiClient) SuggestCategory(ctx context.Context, tx models.Transaction, allowed []models.TaxCategory) (models.TaxCategory, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(tx, allowed)))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	answer := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category, ok := parseCategory(answer, allowed)
	if !ok {
		g.logger.Warn("Gemini returned an unknown category",
			logging.F(logging.FieldTransactionID, tx.ID),
			logging.F("answer", answer))
		return "", fmt.Errorf("unrecognised category %q", answer)
	}
	return category, nil
}

// Close releases the underlying client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
