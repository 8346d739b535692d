package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// SDKConfig configures an SDKClient.
type SDKConfig struct {
	APIKey string
	Model  string
	// BaseURL is the service root without the API version. Empty uses the SDK default.
	BaseURL string
	Timeout time.Duration
}

// SDKClient sends GenerateRequests through the official genai SDK instead of raw REST.
type SDKClient struct {
	client *genai.Client
	model  string
}

// NewSDKClient creates a genai-backed client for the Gemini API.
func NewSDKClient(ctx context.Context, cfg SDKConfig) (*SDKClient, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini sdk: %w", err)
	}

	model := strings.TrimPrefix(cfg.Model, "models/")
	if model == "" {
		model = DefaultModel
	}
	return &SDKClient{client: gc, model: model}, nil
}

// Model returns the model requests are sent to.
func (c *SDKClient) Model() string {
	return c.model
}

// GenerateContent converts req to SDK types, calls the model and converts the reply back.
func (c *SDKClient) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	contents := make([]*genai.Content, 0, len(req.Contents))
	for _, content := range req.Contents {
		contents = append(contents, toSDKContent(content))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, toSDKConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini sdk: generate content: %w", err)
	}
	return fromSDKResponse(resp), nil
}

func toSDKContent(content Content) *genai.Content {
	parts := make([]*genai.Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		parts = append(parts, &genai.Part{Text: p.Text})
	}
	return &genai.Content{Role: content.Role, Parts: parts}
}

func toSDKConfig(req GenerateRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		config.SystemInstruction = toSDKContent(*req.SystemInstruction)
	}
	if gc := req.GenerationConfig; gc != nil {
		temp := float32(gc.Temperature)
		config.Temperature = &temp
		config.MaxOutputTokens = int32(gc.MaxOutputTokens)
		config.ResponseMIMEType = gc.ResponseMIMEType
	}
	return config
}

// fromSDKResponse keeps only text parts; thought summaries are dropped.
func fromSDKResponse(resp *genai.GenerateContentResponse) *GenerateResponse {
	out := &GenerateResponse{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		c := Candidate{Content: Content{Role: cand.Content.Role}}
		for _, p := range cand.Content.Parts {
			if p == nil || p.Thought || p.Text == "" {
				continue
			}
			c.Content.Parts = append(c.Content.Parts, Part{Text: p.Text})
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}
