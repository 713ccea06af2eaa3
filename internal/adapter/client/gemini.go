package client

import (
	"context"
	"errors"
	"net/http"

	"portfolio-gateway/internal/domain/entity"

	"google.golang.org/genai"
)

// GeminiClient adapts the Gemini API to the AIProvider port. Every
// failure it returns is a *entity.RemoteError so the retry layer can
// gate on the failure kind.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: model}, nil
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{client: c, model: model}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	text := firstCandidateText(result)
	if text == "" {
		// Success status but nothing usable in the body. Retrying
		// will not conjure content, treat as a provider failure.
		return "", &entity.RemoteError{
			Kind:           entity.KindProvider,
			StatusCode:     http.StatusOK,
			ProviderDetail: "response contained no candidate text",
		}
	}
	return text, nil
}

func firstCandidateText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}
	content := result.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}

// classify maps SDK errors onto the domain taxonomy: 429 retries with
// backoff, other API statuses are terminal, everything else (dial
// failures, deadlines, body parse errors) counts as transport.
func classify(err error) *entity.RemoteError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		kind := entity.KindProvider
		if apiErr.Code == http.StatusTooManyRequests {
			kind = entity.KindRateLimited
		}
		return &entity.RemoteError{
			Kind:           kind,
			StatusCode:     apiErr.Code,
			ProviderDetail: apiErr.Message,
			Cause:          err,
		}
	}
	return &entity.RemoteError{Kind: entity.KindTransport, Cause: err}
}
