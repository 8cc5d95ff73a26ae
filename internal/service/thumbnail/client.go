// Package thumbnail renders thumbnail images by calling an image generation
// endpoint directly. Generate never fails: every error is replaced by a
// placeholder image.
package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/utils/datauri"
)

const (
	// PlaceholderURI is returned whenever image generation fails
	PlaceholderURI = "https://placehold.co/1280x720/EEE/31343C.png?text=Thumbnail+Generation+Failed"

	DefaultBaseURL   = "https://image.pollinations.ai"
	DefaultModel     = "flux"
	DefaultUserAgent = "NovaCreate-AI/1.0"
	DefaultMIMEType  = "image/jpeg"

	Width  = 1280
	Height = 720
)

// Source tells where Result.ImageURI came from
type Source string

const (
	SourceGenerated   Source = "generated"
	SourcePlaceholder Source = "placeholder"
)

// Token is an optional bearer credential for the image endpoint
type Token struct {
	value string
	set   bool
}

// NoToken means no Authorization header is sent
var NoToken = Token{}

// BearerToken returns a credential sent as "Authorization: Bearer <v>".
// An empty v is the same as NoToken.
func BearerToken(v string) Token {
	v = strings.TrimSpace(v)
	if v == "" {
		return NoToken
	}
	return Token{value: v, set: true}
}

// Present reports whether the token carries a credential
func (t Token) Present() bool {
	return t.set
}

// Options configures a Client
type Options struct {
	BaseURL    string
	Model      string
	Token      Token
	UserAgent  string
	HTTPClient *http.Client
	Logger     llm.Logger
}

// Request is the input of Generate
type Request struct {
	VideoTitle       string `json:"videoTitle"`
	VideoDescription string `json:"videoDescription,omitempty"`
	UserPrompt       string `json:"userPrompt,omitempty"`
}

// Result is always usable as an image reference
type Result struct {
	ImageURI      string `json:"imageUri"`
	Source        Source `json:"source"`
	Prompt        string `json:"prompt"`
	FailureReason string `json:"-"`
}

// Client calls the image endpoint. It holds no mutable state.
type Client struct {
	baseURL    string
	model      string
	token      Token
	userAgent  string
	httpClient *http.Client
	logger     llm.Logger
}

// NewClient creates an image client, filling defaults for empty options
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = &llm.DefaultLogger{}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		token:      opts.Token,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// BuildPrompt returns the user prompt verbatim when it has content,
// otherwise a prompt synthesized from the title
func BuildPrompt(req *Request) string {
	if strings.TrimSpace(req.UserPrompt) != "" {
		return req.UserPrompt
	}
	return "A thumbnail for " + strings.TrimSpace(req.VideoTitle)
}

// URL returns the GET url for prompt. Query parameters keep the order
// width, height, model, nologo.
func (c *Client) URL(prompt string) string {
	return fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&model=%s&nologo=true",
		c.baseURL, EscapePrompt(prompt), Width, Height, url.QueryEscape(c.model))
}

// componentUnescaper restores the marks url.QueryEscape escapes but
// browsers' encodeURIComponent leaves alone
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapePrompt percent-encodes prompt as a single path segment, escaping
// every reserved character including + & = : @ $
func EscapePrompt(prompt string) string {
	return componentUnescaper.Replace(url.QueryEscape(prompt))
}

// Generate requests an image for req and returns it as a data URI, or the
// placeholder when anything goes wrong
func (c *Client) Generate(ctx context.Context, req *Request) *Result {
	if req == nil {
		req = &Request{}
	}
	prompt := BuildPrompt(req)

	imageURI, err := c.fetch(ctx, prompt)
	if err != nil {
		c.logger.Error("Thumbnail generation failed, using placeholder", "error", err)
		return &Result{
			ImageURI:      PlaceholderURI,
			Source:        SourcePlaceholder,
			Prompt:        prompt,
			FailureReason: err.Error(),
		}
	}

	return &Result{ImageURI: imageURI, Source: SourceGenerated, Prompt: prompt}
}

func (c *Client) fetch(ctx context.Context, prompt string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.token.Present() {
		httpReq.Header.Set("Authorization", "Bearer "+c.token.value)
	}

	c.logger.Debug("Requesting thumbnail", "prompt", prompt, "model", c.model)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) == 0 {
		return "", errors.New("image API returned an empty body")
	}

	return datauri.Encode(contentType(resp.Header.Get("Content-Type")), body), nil
}

func contentType(header string) string {
	if header == "" {
		return DefaultMIMEType
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil || mediaType == "" {
		return DefaultMIMEType
	}
	return mediaType
}
