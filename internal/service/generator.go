package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"linguaai/flashcards-api/internal/errs"
)

// TextGenerator answers a free-text prompt with free text
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient talks to the generative language generateContent endpoint
type GeminiClient struct {
	APIKey   string
	Model    string
	Endpoint string
	HTTP     *http.Client
}

func NewGeminiClient(apiKey, model, endpoint string) *GeminiClient {
	return &GeminiClient{
		APIKey:   apiKey,
		Model:    model,
		Endpoint: strings.TrimRight(endpoint, "/"),
		HTTP:     http.DefaultClient,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends prompt as a single user turn. No retries are made
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("%w, no api key configured", errs.ErrGeneration)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.Endpoint, url.PathEscape(g.Model), url.QueryEscape(g.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w, %w", errs.ErrGeneration, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w, failed to read response, %w", errs.ErrGeneration, err)
	}

	var res geminiResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		return "", fmt.Errorf("%w, status %d, invalid response body", errs.ErrGeneration, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if res.Error != nil && res.Error.Message != "" {
			msg = res.Error.Message
		}

		return "", fmt.Errorf("%w, status %d, %s", errs.ErrGeneration, resp.StatusCode, msg)
	}

	var sb strings.Builder
	if len(res.Candidates) > 0 {
		for _, p := range res.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w, empty response", errs.ErrGeneration)
	}

	return sb.String(), nil
}
