package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements llm.StructuredGenerator for Google's Gemini API
type GeminiProvider struct {
	modelName   string
	client      *genai.Client
	logger      llm.Logger
	temperature float32
}

// NewGeminiProvider creates a new Gemini provider using the official client.
// opts are passed to genai.NewClient after the API key.
func NewGeminiProvider(apiKey string, modelName string, logger llm.Logger, opts ...option.ClientOption) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("a Gemini API key is required")
	}

	if modelName == "" {
		modelName = defaultGeminiModel
	}

	if logger == nil {
		logger = &llm.DefaultLogger{}
	}

	client, err := genai.NewClient(context.Background(), append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		modelName:   modelName,
		client:      client,
		logger:      logger,
		temperature: 0.7,
	}, nil
}

// GetName returns the provider name
func (p *GeminiProvider) GetName() string {
	return "gemini"
}

// GenerateStructured implements llm.StructuredGenerator
func (p *GeminiProvider) GenerateStructured(ctx context.Context, request *llm.StructuredRequest) (*llm.StructuredResponse, error) {
	model := p.client.GenerativeModel(p.modelName)

	model.SetTemperature(p.temperature)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(8192)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = toGeminiSchema(request.Schema)

	// Safety settings
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	parts := []genai.Part{genai.Text(request.Prompt)}
	if request.Media != nil {
		parts = append(parts, genai.Blob{MIMEType: request.Media.MIMEType, Data: request.Media.Data})
	}

	p.logger.Debug("Sending prompt to Gemini", "prompt", request.Name, "model", p.modelName,
		"has_media", request.Media != nil)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		p.logger.Error("Gemini API error", "prompt", request.Name, "error", err)
		return nil, fmt.Errorf("%w: gemini: %w", llm.ErrGenerationFailed, err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return nil, fmt.Errorf("%w: gemini blocked the prompt: %s", llm.ErrGenerationFailed, resp.PromptFeedback.BlockReason)
	}

	text := geminiText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: gemini returned no content", llm.ErrGenerationFailed)
	}

	raw := llm.CleanCodeBlocks(text)
	if !json.Valid([]byte(raw)) {
		p.logger.Error("Gemini response is not JSON", "prompt", request.Name, "content", raw)
		return nil, fmt.Errorf("%w: gemini response is not valid JSON", llm.ErrGenerationFailed)
	}

	usage := llm.Usage{Model: p.modelName}
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &llm.StructuredResponse{Raw: json.RawMessage(raw), Usage: usage}, nil
}

// geminiText concatenates the text parts of the first candidate
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

// Close closes the Gemini client
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
