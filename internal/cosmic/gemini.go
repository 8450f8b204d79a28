// internal/cosmic/gemini.go
// Gemini-backed cosmic compatibility blurbs.

package cosmic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/orbitcampus/orbit-backend/internal/matching"
	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 20 * time.Second
	maxBlurbTokens = 150
)

// GeminiDescriber generates match blurbs through the Gemini API. Each call
// is bounded by its own timeout; the matching engine substitutes a local
// fallback whenever Describe returns an error.
type GeminiDescriber struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiDescriber creates a describer for the Gemini API backend.
func NewGeminiDescriber(ctx context.Context, apiKey, model string) (*GeminiDescriber, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiDescriber{
		client:    client,
		modelName: model,
		timeout:   defaultTimeout,
	}, nil
}

func (d *GeminiDescriber) Describe(ctx context.Context, a, b *matching.Candidate, score int) (string, error) {
	if d == nil || d.client == nil {
		return "", errors.New("gemini describer is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	temperature := float32(0.9)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxBlurbTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a witty, Gen-Z campus astrologer who writes cosmic compatibility blurbs.",
			}},
		},
	}

	resp, err := d.client.Models.GenerateContent(ctx, d.modelName, genai.Text(buildPrompt(a, b, score)), cfg)
	if err != nil {
		return "", fmt.Errorf("generate blurb: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil {
				builder.WriteString(part.Text)
			}
		}
		break
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", errors.New("gemini returned an empty blurb")
	}

	return text, nil
}

func buildPrompt(a, b *matching.Candidate, score int) string {
	return fmt.Sprintf(`You are the goofy campus astrologer for Orbit, a Valentine's matching app.
Write a fun, playful, Gen-Z-friendly 2-3 sentence cosmic compatibility blurb for these two people.

Person 1: %s
  Sun: %s | Moon: %s
  Vibes: %s

Person 2: %s
  Sun: %s | Moon: %s
  Vibes: %s

Compatibility: %d%%

Rules:
- Reference real astrology (elements, ruling planets, house placements)
- Keep it light, goofy, campus vibes, like a friend texting you about your crush
- Make it feel personal and specific to their signs
- Include one playful prediction about what they'd do together on campus
- Do NOT use generic dating app language. Be creative and cosmic.
- Keep it under 60 words.`,
		nameOr(a, "Star Child 1"), placement(a.Sun), placement(a.Moon), vibes(a.Hobbies),
		nameOr(b, "Star Child 2"), placement(b.Sun), placement(b.Moon), vibes(b.Hobbies),
		score,
	)
}

func nameOr(c *matching.Candidate, fallback string) string {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return fallback
	}
	return c.Name
}

func placement(s zodiac.Sign) string {
	if !s.Valid() {
		return "Unknown"
	}
	return s.String()
}

func vibes(hobbies []string) string {
	if len(hobbies) == 0 {
		return "mysterious"
	}
	return strings.Join(hobbies, ", ")
}
