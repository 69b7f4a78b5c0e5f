package external_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAIService calls the Gemini generateContent REST endpoint.
type GeminiAIService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ usecasecontract.IAIService = (*GeminiAIService)(nil)

func NewGeminiAIService(apiKey, model string) *GeminiAIService {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiAIService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// GenerateContent sends a single-turn prompt and returns the first candidate's text.
func (g *GeminiAIService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured: %w", entity.ErrAIUnavailable)
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v: %w", err, entity.ErrAIUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("gemini returned %d: %s: %w", resp.StatusCode, msg, entity.ErrAIUnavailable)
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text").String()
	if strings.TrimSpace(text) == "" {
		reason := gjson.GetBytes(body, "promptFeedback.blockReason").String()
		if reason != "" {
			return "", fmt.Errorf("prompt blocked by model: %s", reason)
		}
		return "", fmt.Errorf("gemini returned no content")
	}
	return text, nil
}
