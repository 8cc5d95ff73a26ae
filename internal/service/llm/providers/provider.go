// Package providers contains the structured generation backends.
package providers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// Options configures the backend built by New
type Options struct {
	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	HTTPClient *http.Client
	Logger     llm.Logger
}

// New creates the backend registered under name. An empty name selects Gemini.
func New(name string, opts Options) (llm.StructuredGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gemini":
		p, err := NewGeminiProvider(opts.GeminiAPIKey, opts.GeminiModel, opts.Logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "openai":
		p, err := NewOpenAIProvider(opts.OpenAIAPIKey, opts.OpenAIModel, opts.OpenAIBaseURL, opts.HTTPClient, opts.Logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", llm.ErrInvalidProvider, name)
	}
}

var (
	_ llm.StructuredGenerator = (*GeminiProvider)(nil)
	_ llm.StructuredGenerator = (*OpenAIProvider)(nil)
)
