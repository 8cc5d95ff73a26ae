package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Common errors
var (
	ErrInvalidInput     = errors.New("invalid generation input")
	ErrGenerationFailed = errors.New("generation failed")
	ErrInvalidProvider  = errors.New("invalid LLM provider specified")
	ErrMediaUnsupported = errors.New("provider does not accept media input")
)

// DefaultLogger provides a basic implementation of the Logger interface
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Printf("[DEBUG] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Printf("[INFO] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Printf("[ERROR] %s %v", msg, keysAndValues)
}

// StructuredGenerator is the capability every generation backend provides:
// turn a rendered prompt plus an output shape into JSON matching that shape.
type StructuredGenerator interface {
	// GenerateStructured runs one generation call and returns the raw JSON output
	GenerateStructured(ctx context.Context, request *StructuredRequest) (*StructuredResponse, error)

	// GetName returns the name of the provider
	GetName() string

	// Close performs any necessary cleanup
	Close() error
}

// StructuredRequest is a single call to a StructuredGenerator
type StructuredRequest struct {
	Name   string  // Template identifier, e.g. generateRelevantHashtagsPrompt
	Prompt string  // Rendered prompt text
	Schema *Schema // Declared output shape
	Media  *Media  // Optional binary attachment
}

// StructuredResponse carries the backend output before it is decoded
type StructuredResponse struct {
	Raw   json.RawMessage
	Usage Usage
}

// Usage describes what a single call cost, as reported by the backend
type Usage struct {
	Model            string `json:"model,omitempty"`
	PromptTokens     int    `json:"promptTokens"`
	CompletionTokens int    `json:"completionTokens"`
}

// Media is a binary payload attached to a prompt
type Media struct {
	MIMEType string
	Data     []byte
}

// FieldError describes one failing input field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when a request fails its input schema.
// No backend call is made when this error is returned.
type ValidationError struct {
	Feature Feature
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Feature, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ContractError is returned when the backend output does not satisfy the
// declared output schema. It is a generation failure.
type ContractError struct {
	Feature Feature
	Issues  []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s output violates contract: %s",
		ErrGenerationFailed, e.Feature, strings.Join(e.Issues, "; "))
}

func (e *ContractError) Unwrap() error {
	return ErrGenerationFailed
}

var codeBlocksRegex = regexp.MustCompile("(?s)```(?:json|html)?(.+?)```")

// CleanCodeBlocks removes markdown code blocks from text
func CleanCodeBlocks(text string) string {
	if matches := codeBlocksRegex.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// If no code blocks found, return the original text
	return strings.TrimSpace(text)
}
