// Package logogen is the client for the AI logo studio. It wraps the Gemini
// image model behind a plain request/response contract: a prompt in, an image
// asset or an error out. Nothing else in the system depends on its outcome.
package logogen

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// model is the image-capable Gemini model used for logo concepts.
const model = "gemini-2.5-flash-image"

// Logo is a generated image asset.
type Logo struct {
	MIMEType string
	Data     []byte
}

// Generator produces MoneyBox logo concepts.
type Generator struct {
	client *genai.Client
}

// New creates a Generator from an already-initialized Gemini client.
func New(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// NewFromAPIKey creates the Gemini client from an API key and wraps it.
func NewFromAPIKey(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return New(client), nil
}

// BuildPrompt wraps a free-text idea into the full brand prompt.
func BuildPrompt(idea string) string {
	if idea == "" {
		idea = "Minimalist logo combining a personal wallet and a corporate skyscraper into a single box icon, professional, indigo gradient"
	}
	return fmt.Sprintf("MoneyBox Brand Logo concept for individuals and firms: %s. "+
		"Use a color palette of deep indigo (#4F46E5) and vibrant purple (#9333EA). "+
		"Professional fintech style, high fidelity, 4k. Themes: growth, security, stability.", idea)
}

// Generate asks the model for a logo concept and returns the first inline
// image of the response. Failures are logged and returned; there is no retry.
func (g *Generator) Generate(ctx context.Context, idea string) (*Logo, error) {
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	}
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(BuildPrompt(idea)), config)
	if err != nil {
		logrus.WithError(err).Error("logo generation failed")
		return nil, fmt.Errorf("logo generation failed: %w", err)
	}
	logo, err := ExtractLogo(resp)
	if err != nil {
		logrus.WithError(err).Error("logo generation returned no image")
		return nil, err
	}
	return logo, nil
}

// ExtractLogo picks the first inline image part out of a model response.
func ExtractLogo(resp *genai.GenerateContentResponse) (*Logo, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model %q", model)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &Logo{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
		}
	}
	return nil, fmt.Errorf("no image in response from model %q", model)
}
