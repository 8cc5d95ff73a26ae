package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultTimeout       = 60 * time.Second
)

// OpenAIProvider implements llm.StructuredGenerator for OpenAI-compatible
// chat completions endpoints
type OpenAIProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     llm.Logger
}

// OpenAIMessage represents a message in the OpenAI chat API
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIJSONSchema is the json_schema member of response_format
type OpenAIJSONSchema struct {
	Name   string                 `json:"name"`
	Strict bool                   `json:"strict"`
	Schema map[string]interface{} `json:"schema"`
}

// OpenAIResponseFormat asks the API for schema-conforming output
type OpenAIResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *OpenAIJSONSchema `json:"json_schema,omitempty"`
}

// OpenAIRequest represents a request to OpenAI's chat completions API
type OpenAIRequest struct {
	Model          string                `json:"model"`
	Messages       []OpenAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *OpenAIResponseFormat `json:"response_format,omitempty"`
}

// OpenAIResponse represents the response from OpenAI's chat completions API
type OpenAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int    `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Refusal string `json:"refusal"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// NewOpenAIProvider creates a new OpenAI provider. An empty baseURL or model
// selects the public API defaults and a nil httpClient gets a 60s timeout.
func NewOpenAIProvider(apiKey, model, baseURL string, httpClient *http.Client, logger llm.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if model == "" {
		model = defaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = &llm.DefaultLogger{}
	}

	return &OpenAIProvider{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// GetName returns the provider name
func (p *OpenAIProvider) GetName() string {
	return "openai"
}

// GenerateStructured implements llm.StructuredGenerator
func (p *OpenAIProvider) GenerateStructured(ctx context.Context, request *llm.StructuredRequest) (*llm.StructuredResponse, error) {
	if request.Media != nil {
		return nil, fmt.Errorf("%w: %s", llm.ErrMediaUnsupported, p.GetName())
	}

	apiRequest := OpenAIRequest{
		Model: p.model,
		Messages: []OpenAIMessage{
			{
				Role:    "system",
				Content: "You are an assistant for video content creators. Always answer with a single JSON object.",
			},
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
		Temperature: 0.7,
	}
	if request.Schema != nil {
		apiRequest.ResponseFormat = &OpenAIResponseFormat{
			Type: "json_schema",
			JSONSchema: &OpenAIJSONSchema{
				Name:   request.Name,
				Strict: true,
				Schema: toJSONSchema(request.Schema),
			},
		}
	} else {
		apiRequest.ResponseFormat = &OpenAIResponseFormat{Type: "json_object"}
	}

	apiResponse, err := p.makeRequest(ctx, apiRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", llm.ErrGenerationFailed, err)
	}

	if len(apiResponse.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response from OpenAI", llm.ErrGenerationFailed)
	}

	message := apiResponse.Choices[0].Message
	if message.Refusal != "" {
		return nil, fmt.Errorf("%w: openai refused: %s", llm.ErrGenerationFailed, message.Refusal)
	}

	raw := llm.CleanCodeBlocks(message.Content)
	if !json.Valid([]byte(raw)) {
		p.logger.Error("OpenAI response is not JSON", "prompt", request.Name, "content", raw)
		return nil, fmt.Errorf("%w: openai response is not valid JSON", llm.ErrGenerationFailed)
	}

	model := apiResponse.Model
	if model == "" {
		model = p.model
	}

	return &llm.StructuredResponse{
		Raw: json.RawMessage(raw),
		Usage: llm.Usage{
			Model:            model,
			PromptTokens:     apiResponse.Usage.PromptTokens,
			CompletionTokens: apiResponse.Usage.CompletionTokens,
		},
	}, nil
}

// makeRequest sends a request to the chat completions endpoint
func (p *OpenAIProvider) makeRequest(ctx context.Context, request OpenAIRequest) (*OpenAIResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.Error("OpenAI API error",
			"status", resp.Status,
			"body", string(body))
		return nil, fmt.Errorf("API error: %s", resp.Status)
	}

	var apiResponse OpenAIResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &apiResponse, nil
}

// Close implements llm.StructuredGenerator
func (p *OpenAIProvider) Close() error {
	// Nothing to close for HTTP client
	return nil
}
