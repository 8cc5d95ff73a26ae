// Package flows runs the generation flows: validate the request, render its
// prompt, make one backend call and check the structured output.
package flows

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/prompts"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/tokens"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm/validation"
)

// ErrUnknownFeature is returned by Invoke for a feature with no flow
var ErrUnknownFeature = errors.New("unknown feature")

// Service runs flows against one backend. It is immutable after construction
// and safe for concurrent use.
type Service struct {
	backend   llm.StructuredGenerator
	validator *validation.Validator
	prompts   *prompts.Generator
	logger    llm.Logger
	invokers  map[llm.Feature]invoker
}

// ServiceOptions contains configuration for the flow service
type ServiceOptions struct {
	Backend   llm.StructuredGenerator
	Validator *validation.Validator
	Prompts   *prompts.Generator
	Logger    llm.Logger
}

// Invocation is the result of a generic Invoke call
type Invocation struct {
	ID       string        `json:"id"`
	Feature  llm.Feature   `json:"feature"`
	Output   interface{}   `json:"output"`
	Usage    llm.Usage     `json:"usage"`
	Duration time.Duration `json:"duration"`
}

// invoker decodes a raw request for one feature and runs its flow
type invoker func(ctx context.Context, s *Service, callID string, raw json.RawMessage) (interface{}, llm.Usage, error)

// NewService creates a flow service with the specified options
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Backend == nil {
		return nil, llm.ErrInvalidProvider
	}
	if opts.Validator == nil {
		opts.Validator = validation.NewValidator()
	}
	if opts.Prompts == nil {
		opts.Prompts = prompts.NewGenerator()
	}
	if opts.Logger == nil {
		opts.Logger = &llm.DefaultLogger{}
	}

	return &Service{
		backend:   opts.Backend,
		validator: opts.Validator,
		prompts:   opts.Prompts,
		logger:    opts.Logger,
		invokers: map[llm.Feature]invoker{
			llm.FeatureScriptAndHooks:  decodeAndRun(scriptFlow),
			llm.FeatureHashtags:        decodeAndRun(hashtagsFlow),
			llm.FeatureVideoIdeas:      decodeAndRun(ideasFlow),
			llm.FeatureOptimizeContent: decodeAndRun(optimizeFlow),
			llm.FeatureCaptions:        decodeAndRun(captionsFlow),
			llm.FeatureRemix:           decodeAndRun(remixFlow),
			llm.FeatureThumbnailPrompt: decodeAndRun(thumbnailPromptFlow),
		},
	}, nil
}

// Backend returns the name of the configured backend
func (s *Service) Backend() string {
	return s.backend.GetName()
}

// Features returns the registered feature names in sorted order
func (s *Service) Features() []llm.Feature {
	features := make([]llm.Feature, 0, len(s.invokers))
	for f := range s.invokers {
		features = append(features, f)
	}
	sort.Slice(features, func(i, j int) bool { return features[i] < features[j] })
	return features
}

// Invoke decodes raw into the request type of feature and runs its flow
func (s *Service) Invoke(ctx context.Context, feature llm.Feature, raw json.RawMessage) (*Invocation, error) {
	run, ok := s.invokers[feature]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}

	id := uuid.NewString()
	start := time.Now()
	output, usage, err := run(ctx, s, id, raw)
	if err != nil {
		return nil, err
	}

	return &Invocation{
		ID:       id,
		Feature:  feature,
		Output:   output,
		Usage:    usage,
		Duration: time.Since(start),
	}, nil
}

// GenerateScriptAndHooks generates a video script with four hooks
func (s *Service) GenerateScriptAndHooks(ctx context.Context, request *llm.ScriptRequest) (*llm.ScriptResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), scriptFlow, request)
	return out, err
}

// GenerateHashtags generates trending, niche and branded hashtags
func (s *Service) GenerateHashtags(ctx context.Context, request *llm.HashtagsRequest) (*llm.HashtagsResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), hashtagsFlow, request)
	return out, err
}

// GenerateVideoIdeas generates the requested number of video ideas
func (s *Service) GenerateVideoIdeas(ctx context.Context, request *llm.IdeasRequest) (*llm.IdeasResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), ideasFlow, request)
	return out, err
}

// OptimizeContent optimizes title, description and tags and recommends a posting time
func (s *Service) OptimizeContent(ctx context.Context, request *llm.OptimizeRequest) (*llm.OptimizeResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), optimizeFlow, request)
	return out, err
}

// GenerateCaptions generates captions and subtitles for an attached video
func (s *Service) GenerateCaptions(ctx context.Context, request *llm.CaptionsRequest) (*llm.CaptionsResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), captionsFlow, request)
	return out, err
}

// RemixContent repurposes source content into every requested format
func (s *Service) RemixContent(ctx context.Context, request *llm.RemixRequest) (llm.RemixResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), remixFlow, request)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// GenerateThumbnailPrompt generates an image-generation prompt for a thumbnail
func (s *Service) GenerateThumbnailPrompt(ctx context.Context, request *llm.ThumbnailPromptRequest) (*llm.ThumbnailPromptResult, error) {
	out, _, err := execute(ctx, s, uuid.NewString(), thumbnailPromptFlow, request)
	return out, err
}

// execute is the single orchestration point shared by every flow
// callID tags every log line of the invocation.
func execute[In any, Out any, PIn request[In]](ctx context.Context, s *Service, callID string, f flow[In, Out, PIn], in PIn) (*Out, llm.Usage, error) {
	// Validate before anything leaves the process
	in.Normalize()
	if err := s.validator.Validate(f.feature, in); err != nil {
		s.logger.Info("Rejected generation request", "feature", f.feature, "call_id", callID, "error", err)
		return nil, llm.Usage{}, err
	}

	req := &llm.StructuredRequest{
		Name:   string(f.name),
		Prompt: f.render(s.prompts, in),
		Schema: f.schema(in),
	}
	if f.media != nil {
		media, err := f.media(in)
		if err != nil {
			return nil, llm.Usage{}, &llm.ValidationError{
				Feature: f.feature,
				Fields:  []llm.FieldError{{Field: "media", Rule: "media", Message: err.Error()}},
			}
		}
		req.Media = media
	}

	s.logger.Debug("Invoking flow", "feature", f.feature, "call_id", callID,
		"backend", s.backend.GetName(), "prompt", req.Name)

	resp, err := s.backend.GenerateStructured(ctx, req)
	if err != nil {
		s.logger.Error("Generation backend failed", "feature", f.feature, "call_id", callID, "error", err)
		if errors.Is(err, llm.ErrGenerationFailed) {
			return nil, llm.Usage{}, err
		}
		return nil, llm.Usage{}, fmt.Errorf("%w: %s: %w", llm.ErrGenerationFailed, f.feature, err)
	}

	if resp == nil {
		return nil, llm.Usage{}, fmt.Errorf("%w: %s: backend returned no response", llm.ErrGenerationFailed, f.feature)
	}

	if resp.Usage.PromptTokens == 0 && resp.Usage.CompletionTokens == 0 {
		resp.Usage.PromptTokens = tokens.EstimateTokens(req.Prompt)
		resp.Usage.CompletionTokens = tokens.EstimateTokens(string(resp.Raw))
	}

	out := new(Out)
	if err := json.NewDecoder(bytes.NewReader(resp.Raw)).Decode(out); err != nil {
		s.logger.Error("Failed to decode structured output", "feature", f.feature, "call_id", callID, "error", err)
		return nil, resp.Usage, &llm.ContractError{
			Feature: f.feature,
			Issues:  []string{fmt.Sprintf("output is not a valid %s object: %v", f.feature, err)},
		}
	}

	issues := s.validator.Check(out)
	if f.check != nil {
		issues = append(issues, f.check(in, out)...)
	}
	if len(issues) > 0 {
		s.logger.Error("Structured output violates contract", "feature", f.feature, "call_id", callID, "issues", issues)
		return nil, resp.Usage, &llm.ContractError{Feature: f.feature, Issues: issues}
	}

	s.logger.Info("Flow completed", "feature", f.feature, "call_id", callID,
		"prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)

	return out, resp.Usage, nil
}

// decodeAndRun adapts a typed flow to the generic invoker signature
func decodeAndRun[In any, Out any, PIn request[In]](f flow[In, Out, PIn]) invoker {
	return func(ctx context.Context, s *Service, callID string, raw json.RawMessage) (interface{}, llm.Usage, error) {
		in := PIn(new(In))
		if len(bytes.TrimSpace(raw)) == 0 {
			raw = json.RawMessage("{}")
		}
		if err := json.Unmarshal(raw, in); err != nil {
			return nil, llm.Usage{}, &llm.ValidationError{
				Feature: f.feature,
				Fields:  []llm.FieldError{{Field: "", Rule: "json", Message: "request body is not a valid " + string(f.feature) + " request: " + err.Error()}},
			}
		}

		out, usage, err := execute(ctx, s, callID, f, in)
		if err != nil {
			return nil, usage, err
		}
		return out, usage, nil
	}
}
