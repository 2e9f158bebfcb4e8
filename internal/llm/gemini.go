package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type implClient struct {
	mu          sync.Mutex
	apiKeys     []string
	currentKey  int
	model       string
	temperature float64
	logger      logger.Logger
}

// New creates a Gemini-backed Client that rotates through the supplied API
// keys when one is rate limited
func New(cfg config.GeminiConfig, log logger.Logger) Client {
	return &implClient{
		apiKeys:     cfg.APIKeys,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      log,
	}
}

// Generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors until every key has been tried.
func (c *implClient) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		temp := float32(c.temperature)
		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: &temp,
		})
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %v: %w", err, apperrors.ErrCapability)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini: %w", apperrors.ErrCapability)
	}

	return "", fmt.Errorf("all API keys exhausted: %v: %w", lastErr, apperrors.ErrCapability)
}

func (c *implClient) nextKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *implClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
